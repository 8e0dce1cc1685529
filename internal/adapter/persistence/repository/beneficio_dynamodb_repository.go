package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"consorcio_crm/internal/domain/entities"
	"consorcio_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBeneficiosTableName = "beneficios"

type beneficioItem struct {
	ID string `dynamodbav:"id"`

	ClienteID        string `dynamodbav:"cliente_id"`
	RepresentanteID  string `dynamodbav:"representante_id"`
	ConsultorID      string `dynamodbav:"consultor_id,omitempty"`
	UnidadeID        string `dynamodbav:"unidade_id,omitempty"`
	EmpresaID        string `dynamodbav:"empresa_id,omitempty"`
	TabelaCreditoID  string `dynamodbav:"tabela_credito_id"`
	AdministradoraID string `dynamodbav:"administradora_id,omitempty"`

	TipoBem           string  `dynamodbav:"tipo_bem"`
	PrazoGrupo        int     `dynamodbav:"prazo_grupo"`
	ValorCredito      float64 `dynamodbav:"valor_credito"`
	Parcela           float64 `dynamodbav:"parcela"`
	FundoReserva      float64 `dynamodbav:"fundo_reserva"`
	TaxaAdministracao float64 `dynamodbav:"taxa_administracao"`
	SeguroPrestamista float64 `dynamodbav:"seguro_prestamista"`
	IndiceCorrecao    string  `dynamodbav:"indice_correcao,omitempty"`
	QtdParticipantes  int     `dynamodbav:"qtd_participantes"`
	TipoPlano         string  `dynamodbav:"tipo_plano,omitempty"`

	Grupo string `dynamodbav:"grupo,omitempty"`
	Cota  string `dynamodbav:"cota,omitempty"`

	Status string `dynamodbav:"status"`

	DataProposta               string `dynamodbav:"data_proposta,omitempty"`
	DataAceite                 string `dynamodbav:"data_aceite,omitempty"`
	DataRejeicao               string `dynamodbav:"data_rejeicao,omitempty"`
	DataContrato               string `dynamodbav:"data_contrato,omitempty"`
	DataAssinaturaContrato     string `dynamodbav:"data_assinatura_contrato,omitempty"`
	DataCadastroAdministradora string `dynamodbav:"data_cadastro_administradora,omitempty"`
	DataTermo                  string `dynamodbav:"data_termo,omitempty"`
	DataAssinaturaTermo        string `dynamodbav:"data_assinatura_termo,omitempty"`
	DataAtivacao               string `dynamodbav:"data_ativacao,omitempty"`
	DataCancelamento           string `dynamodbav:"data_cancelamento,omitempty"`

	MotivoRejeicao     string `dynamodbav:"motivo_rejeicao,omitempty"`
	MotivoCancelamento string `dynamodbav:"motivo_cancelamento,omitempty"`
	Observacoes        string `dynamodbav:"observacoes,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BeneficioDynamoRepository persists Beneficio entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// ApplyTransition rewrites the whole item inside a TransactWriteItems call
// together with the historico Put, conditioned on the stored status still
// matching what the caller loaded. DynamoDB serializes transactions on the
// same item, so two racing transitions resolve to one winner and one
// ErrStatusDesatualizado.

type BeneficioDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	historicosTable string
}

var _ interfaces.IBeneficioRepository = (*BeneficioDynamoRepository)(nil)

func NewBeneficioDynamoRepository(ddb *dynamodb.Client) *BeneficioDynamoRepository {
	return &BeneficioDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("BENEFICIOS_TABLE", defaultBeneficiosTableName),
		historicosTable: getenvDefault("BENEFICIO_HISTORICOS_TABLE", defaultHistoricosTableName),
	}
}

func (r *BeneficioDynamoRepository) Create(ctx context.Context, b entities.Beneficio) (entities.Beneficio, error) {
	av, err := attributevalue.MarshalMap(toBeneficioItem(b))
	if err != nil {
		return entities.Beneficio{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Beneficio{}, err
	}
	return b, nil
}

func (r *BeneficioDynamoRepository) GetByID(ctx context.Context, id string) (entities.Beneficio, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Beneficio{}, err
	}
	if len(out.Item) == 0 {
		return entities.Beneficio{}, nil
	}

	var it beneficioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Beneficio{}, err
	}
	return fromBeneficioItem(it)
}

func (r *BeneficioDynamoRepository) List(ctx context.Context, filtro interfaces.BeneficioFiltro) ([]entities.Beneficio, error) {
	var (
		conds []string
		names = map[string]string{}
		vals  = map[string]types.AttributeValue{}
	)
	if filtro.ClienteID != "" {
		conds = append(conds, "#cliente_id = :cliente_id")
		names["#cliente_id"] = "cliente_id"
		vals[":cliente_id"] = &types.AttributeValueMemberS{Value: filtro.ClienteID}
	}
	if filtro.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		vals[":status"] = &types.AttributeValueMemberS{Value: string(filtro.Status)}
	}
	if filtro.TipoBem != "" {
		conds = append(conds, "#tipo_bem = :tipo_bem")
		names["#tipo_bem"] = "tipo_bem"
		vals[":tipo_bem"] = &types.AttributeValueMemberS{Value: string(filtro.TipoBem)}
	}

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(conds) > 0 {
		input.FilterExpression = aws.String(strings.Join(conds, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = vals
	}

	beneficios := make([]entities.Beneficio, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it beneficioItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			b, err := fromBeneficioItem(it)
			if err != nil {
				return nil, err
			}
			beneficios = append(beneficios, b)
		}
	}
	return beneficios, nil
}

func (r *BeneficioDynamoRepository) ApplyTransition(ctx context.Context, b entities.Beneficio, statusAnterior entities.BeneficioStatus, updatedAtAnterior time.Time, h entities.BeneficioHistorico) (entities.Beneficio, error) {
	beneficioAV, err := attributevalue.MarshalMap(toBeneficioItem(b))
	if err != nil {
		return entities.Beneficio{}, err
	}
	historicoAV, err := attributevalue.MarshalMap(toHistoricoItem(h))
	if err != nil {
		return entities.Beneficio{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                beneficioAV,
					// The updated_at match rejects stale snapshots even when an
					// intervening A->B->A sequence restored the old status.
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :status_anterior AND #updated_at = :updated_at_anterior"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":status_anterior":     &types.AttributeValueMemberS{Value: string(statusAnterior)},
						":updated_at_anterior": &types.AttributeValueMemberS{Value: formatTime(updatedAtAnterior)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.historicosTable),
					Item:                historicoAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Beneficio{}, fmt.Errorf("apply transition beneficio_id=%s: %w", b.ID, interfaces.ErrStatusDesatualizado)
		}
		return entities.Beneficio{}, err
	}
	return b, nil
}

// isConditionalCancellation reports whether a transaction was cancelled
// because a ConditionExpression failed, as opposed to throttling or capacity.
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toBeneficioItem(b entities.Beneficio) beneficioItem {
	return beneficioItem{
		ID:               b.ID,
		ClienteID:        b.ClienteID,
		RepresentanteID:  b.RepresentanteID,
		ConsultorID:      b.ConsultorID,
		UnidadeID:        b.UnidadeID,
		EmpresaID:        b.EmpresaID,
		TabelaCreditoID:  b.TabelaCreditoID,
		AdministradoraID: b.AdministradoraID,

		TipoBem:           string(b.TipoBem),
		PrazoGrupo:        b.PrazoGrupo,
		ValorCredito:      b.ValorCredito,
		Parcela:           b.Parcela,
		FundoReserva:      b.FundoReserva,
		TaxaAdministracao: b.TaxaAdministracao,
		SeguroPrestamista: b.SeguroPrestamista,
		IndiceCorrecao:    b.IndiceCorrecao,
		QtdParticipantes:  b.QtdParticipantes,
		TipoPlano:         b.TipoPlano,

		Grupo: b.Grupo,
		Cota:  b.Cota,

		Status: string(b.Status),

		DataProposta:               formatOptionalTime(b.DataProposta),
		DataAceite:                 formatOptionalTime(b.DataAceite),
		DataRejeicao:               formatOptionalTime(b.DataRejeicao),
		DataContrato:               formatOptionalTime(b.DataContrato),
		DataAssinaturaContrato:     formatOptionalTime(b.DataAssinaturaContrato),
		DataCadastroAdministradora: formatOptionalTime(b.DataCadastroAdministradora),
		DataTermo:                  formatOptionalTime(b.DataTermo),
		DataAssinaturaTermo:        formatOptionalTime(b.DataAssinaturaTermo),
		DataAtivacao:               formatOptionalTime(b.DataAtivacao),
		DataCancelamento:           formatOptionalTime(b.DataCancelamento),

		MotivoRejeicao:     b.MotivoRejeicao,
		MotivoCancelamento: b.MotivoCancelamento,
		Observacoes:        b.Observacoes,

		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
}

func fromBeneficioItem(it beneficioItem) (entities.Beneficio, error) {
	var parseErr error
	req := func(s string) time.Time {
		t, err := parseTime(s)
		if err != nil && parseErr == nil {
			parseErr = err
		}
		return t
	}
	opt := func(s string) *time.Time {
		t, err := parseOptionalTime(s)
		if err != nil && parseErr == nil {
			parseErr = err
		}
		return t
	}
	b := entities.Beneficio{
		ID:               it.ID,
		ClienteID:        it.ClienteID,
		RepresentanteID:  it.RepresentanteID,
		ConsultorID:      it.ConsultorID,
		UnidadeID:        it.UnidadeID,
		EmpresaID:        it.EmpresaID,
		TabelaCreditoID:  it.TabelaCreditoID,
		AdministradoraID: it.AdministradoraID,

		TipoBem:           entities.TipoBem(it.TipoBem),
		PrazoGrupo:        it.PrazoGrupo,
		ValorCredito:      it.ValorCredito,
		Parcela:           it.Parcela,
		FundoReserva:      it.FundoReserva,
		TaxaAdministracao: it.TaxaAdministracao,
		SeguroPrestamista: it.SeguroPrestamista,
		IndiceCorrecao:    it.IndiceCorrecao,
		QtdParticipantes:  it.QtdParticipantes,
		TipoPlano:         it.TipoPlano,

		Grupo: it.Grupo,
		Cota:  it.Cota,

		Status: entities.BeneficioStatus(it.Status),

		DataProposta:               opt(it.DataProposta),
		DataAceite:                 opt(it.DataAceite),
		DataRejeicao:               opt(it.DataRejeicao),
		DataContrato:               opt(it.DataContrato),
		DataAssinaturaContrato:     opt(it.DataAssinaturaContrato),
		DataCadastroAdministradora: opt(it.DataCadastroAdministradora),
		DataTermo:                  opt(it.DataTermo),
		DataAssinaturaTermo:        opt(it.DataAssinaturaTermo),
		DataAtivacao:               opt(it.DataAtivacao),
		DataCancelamento:           opt(it.DataCancelamento),

		MotivoRejeicao:     it.MotivoRejeicao,
		MotivoCancelamento: it.MotivoCancelamento,
		Observacoes:        it.Observacoes,

		CreatedAt: req(it.CreatedAt),
		UpdatedAt: req(it.UpdatedAt),
	}
	if parseErr != nil {
		return entities.Beneficio{}, parseErr
	}
	return b, nil
}
