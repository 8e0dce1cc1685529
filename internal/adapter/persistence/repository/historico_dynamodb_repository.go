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

const (
	defaultHistoricosTableName = "beneficio_historicos"
	historicosBeneficioIndex   = "beneficio_id-index"
)

type historicoItem struct {
	ID             string `dynamodbav:"id"`
	BeneficioID    string `dynamodbav:"beneficio_id"`
	UsuarioID      string `dynamodbav:"usuario_id"`
	StatusAnterior string `dynamodbav:"status_anterior,omitempty"`
	StatusNovo     string `dynamodbav:"status_novo"`
	Acao           string `dynamodbav:"acao"`
	Observacao     string `dynamodbav:"observacao,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// HistoricoDynamoRepository reads BeneficioHistorico entries from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: beneficio_id-index (PK: beneficio_id, SK: created_at)
//
// Entries are written by BeneficioDynamoRepository.ApplyTransition; there is
// no write path here on purpose.

type HistoricoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBeneficioHistoricoRepository = (*HistoricoDynamoRepository)(nil)

func NewHistoricoDynamoRepository(ddb *dynamodb.Client) *HistoricoDynamoRepository {
	return &HistoricoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BENEFICIO_HISTORICOS_TABLE", defaultHistoricosTableName),
	}
}

func (r *HistoricoDynamoRepository) ListByBeneficioID(ctx context.Context, beneficioID string) ([]entities.BeneficioHistorico, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historicosBeneficioIndex),
		KeyConditionExpression: aws.String("beneficio_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: beneficioID},
		},
		// Range key is created_at; newest first.
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	registros := make([]entities.BeneficioHistorico, 0, len(out.Items))
	for _, raw := range out.Items {
		var it historicoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		reg, err := fromHistoricoItem(it)
		if err != nil {
			return nil, err
		}
		registros = append(registros, reg)
	}
	return registros, nil
}

func toHistoricoItem(h entities.BeneficioHistorico) historicoItem {
	return historicoItem{
		ID:             h.ID,
		BeneficioID:    h.BeneficioID,
		UsuarioID:      h.UsuarioID,
		StatusAnterior: string(h.StatusAnterior),
		StatusNovo:     string(h.StatusNovo),
		Acao:           string(h.Acao),
		Observacao:     h.Observacao,
		CreatedAt:      formatTime(h.CreatedAt),
	}
}

func fromHistoricoItem(it historicoItem) (entities.BeneficioHistorico, error) {
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.BeneficioHistorico{}, err
	}
	return entities.BeneficioHistorico{
		ID:             it.ID,
		BeneficioID:    it.BeneficioID,
		UsuarioID:      it.UsuarioID,
		StatusAnterior: entities.BeneficioStatus(it.StatusAnterior),
		StatusNovo:     entities.BeneficioStatus(it.StatusNovo),
		Acao:           entities.HistoricoAcao(it.Acao),
		Observacao:     it.Observacao,
		CreatedAt:      createdAt,
	}, nil
}
