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

const defaultUsuariosTableName = "usuarios"

type usuarioItem struct {
	ID         string   `dynamodbav:"id"`
	Nome       string   `dynamodbav:"nome"`
	Perfil     string   `dynamodbav:"perfil"`
	Permissoes []string `dynamodbav:"permissoes,omitempty"`
	Ativo      bool     `dynamodbav:"ativo"`
}

// UsuarioDynamoRepository reads the usuarios directory: actor names for the
// historico read model and perfil/permission codes for the permission gate.

type UsuarioDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUsuarioRepository = (*UsuarioDynamoRepository)(nil)

func NewUsuarioDynamoRepository(ddb *dynamodb.Client) *UsuarioDynamoRepository {
	return &UsuarioDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USUARIOS_TABLE", defaultUsuariosTableName),
	}
}

func (r *UsuarioDynamoRepository) GetByID(ctx context.Context, id string) (entities.Usuario, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	if len(out.Item) == 0 {
		return entities.Usuario{}, nil
	}

	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Usuario{}, err
	}
	return entities.Usuario{
		ID:         it.ID,
		Nome:       it.Nome,
		Perfil:     it.Perfil,
		Permissoes: it.Permissoes,
		Ativo:      it.Ativo,
	}, nil
}
