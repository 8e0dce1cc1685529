package repository

import (
	"context"

	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientesTableName = "clientes"

type clienteItem struct {
	ID      string   `dynamodbav:"id"`
	Nome    string   `dynamodbav:"nome"`
	CPF     string   `dynamodbav:"cpf,omitempty"`
	Salario *float64 `dynamodbav:"salario,omitempty"`
	Ativo   bool     `dynamodbav:"ativo"`
}

// ClienteDynamoRepository reads the cliente projection kept up to date by the
// cadastro service. Full client records live elsewhere.

type ClienteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClienteRepository = (*ClienteDynamoRepository)(nil)

func NewClienteDynamoRepository(ddb *dynamodb.Client) *ClienteDynamoRepository {
	return &ClienteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTES_TABLE", defaultClientesTableName),
	}
}

func (r *ClienteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cliente{}, nil
	}

	var it clienteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cliente{}, err
	}
	return entities.Cliente{
		ID:      it.ID,
		Nome:    it.Nome,
		CPF:     it.CPF,
		Salario: it.Salario,
		Ativo:   it.Ativo,
	}, nil
}
