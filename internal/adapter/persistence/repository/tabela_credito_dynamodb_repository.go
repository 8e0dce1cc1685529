package repository

import (
	"context"
	"strconv"
	"strings"

	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTabelasTableName = "tabelas_credito"

type tabelaCreditoItem struct {
	ID                string  `dynamodbav:"id"`
	Nome              string  `dynamodbav:"nome"`
	TipoBem           string  `dynamodbav:"tipo_bem"`
	Prazo             int     `dynamodbav:"prazo"`
	ValorCredito      float64 `dynamodbav:"valor_credito"`
	Parcela           float64 `dynamodbav:"parcela"`
	FundoReserva      float64 `dynamodbav:"fundo_reserva"`
	TaxaAdministracao float64 `dynamodbav:"taxa_administracao"`
	SeguroPrestamista float64 `dynamodbav:"seguro_prestamista"`
	IndiceCorrecao    string  `dynamodbav:"indice_correcao,omitempty"`
	QtdParticipantes  int     `dynamodbav:"qtd_participantes"`
	TipoPlano         string  `dynamodbav:"tipo_plano,omitempty"`
	AdministradoraID  string  `dynamodbav:"administradora_id,omitempty"`
	Ativo             bool    `dynamodbav:"ativo"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at,omitempty"`
}

// TabelaCreditoDynamoRepository reads the credit-table catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small (hundreds of plans), so filtered Scans are fine here.

type TabelaCreditoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITabelaCreditoRepository = (*TabelaCreditoDynamoRepository)(nil)

func NewTabelaCreditoDynamoRepository(ddb *dynamodb.Client) *TabelaCreditoDynamoRepository {
	return &TabelaCreditoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TABELAS_CREDITO_TABLE", defaultTabelasTableName),
	}
}

func (r *TabelaCreditoDynamoRepository) GetByID(ctx context.Context, id string) (entities.TabelaCredito, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.TabelaCredito{}, err
	}
	if len(out.Item) == 0 {
		return entities.TabelaCredito{}, nil
	}

	var it tabelaCreditoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TabelaCredito{}, err
	}
	return fromTabelaCreditoItem(it)
}

func (r *TabelaCreditoDynamoRepository) List(ctx context.Context, filtro interfaces.TabelaCreditoFiltro) ([]entities.TabelaCredito, error) {
	var (
		conds []string
		names = map[string]string{}
		vals  = map[string]types.AttributeValue{}
	)
	if filtro.SomenteAtivas {
		conds = append(conds, "#ativo = :ativo")
		names["#ativo"] = "ativo"
		vals[":ativo"] = &types.AttributeValueMemberBOOL{Value: true}
	}
	if filtro.TipoBem != "" {
		conds = append(conds, "#tipo_bem = :tipo_bem")
		names["#tipo_bem"] = "tipo_bem"
		vals[":tipo_bem"] = &types.AttributeValueMemberS{Value: string(filtro.TipoBem)}
	}
	if filtro.ValorCreditoMin != nil {
		conds = append(conds, "#valor_credito >= :valor_min")
		names["#valor_credito"] = "valor_credito"
		vals[":valor_min"] = numberAV(*filtro.ValorCreditoMin)
	}
	if filtro.ValorCreditoMax != nil {
		conds = append(conds, "#valor_credito <= :valor_max")
		names["#valor_credito"] = "valor_credito"
		vals[":valor_max"] = numberAV(*filtro.ValorCreditoMax)
	}
	if filtro.ParcelaMax != nil {
		conds = append(conds, "#parcela <= :parcela_max")
		names["#parcela"] = "parcela"
		vals[":parcela_max"] = numberAV(*filtro.ParcelaMax)
	}

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(conds) > 0 {
		input.FilterExpression = aws.String(strings.Join(conds, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = vals
	}

	tabelas := make([]entities.TabelaCredito, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it tabelaCreditoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			tc, err := fromTabelaCreditoItem(it)
			if err != nil {
				return nil, err
			}
			tabelas = append(tabelas, tc)
		}
	}
	return tabelas, nil
}

func numberAV(v float64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

func fromTabelaCreditoItem(it tabelaCreditoItem) (entities.TabelaCredito, error) {
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.TabelaCredito{}, err
	}
	updatedAt, err := parseTime(it.UpdatedAt)
	if err != nil {
		return entities.TabelaCredito{}, err
	}
	return entities.TabelaCredito{
		ID:                it.ID,
		Nome:              it.Nome,
		TipoBem:           entities.TipoBem(it.TipoBem),
		Prazo:             it.Prazo,
		ValorCredito:      it.ValorCredito,
		Parcela:           it.Parcela,
		FundoReserva:      it.FundoReserva,
		TaxaAdministracao: it.TaxaAdministracao,
		SeguroPrestamista: it.SeguroPrestamista,
		IndiceCorrecao:    it.IndiceCorrecao,
		QtdParticipantes:  it.QtdParticipantes,
		TipoPlano:         it.TipoPlano,
		AdministradoraID:  it.AdministradoraID,
		Ativo:             it.Ativo,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}
