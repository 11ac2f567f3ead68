package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

var _ interfaces.IEscalationStore = (*Store)(nil)

// Tables names the DynamoDB table of each entity kind.
type Tables struct {
	Orders     string
	Links      string
	Complaints string
	Incidents  string
}

// Store groups the four DynamoDB-backed collections.
type Store struct {
	ddb DynamoAPI

	Orders     *Collection[entities.Order]
	Links      *Collection[entities.ConsumerLink]
	Complaints *Collection[entities.Complaint]
	Incidents  *Collection[entities.Incident]
}

func NewStore(ddb DynamoAPI, tables Tables) *Store {
	now := func() time.Time { return time.Now().UTC() }
	return &Store{
		ddb:        ddb,
		Orders:     newCollection(ddb, tables.Orders, orderCodec, now),
		Links:      newCollection(ddb, tables.Links, linkCodec, now),
		Complaints: newCollection(ddb, tables.Complaints, complaintCodec, now),
		Incidents:  newCollection(ddb, tables.Incidents, incidentCodec, now),
	}
}

// CommitEscalation writes the complaint (version-checked) and creates the
// incident (must not exist) in one TransactWriteItems call.
func (s *Store) CommitEscalation(ctx context.Context, complaint entities.Complaint, incident entities.Incident) (entities.Complaint, entities.Incident, error) {
	if incident.ID == "" {
		return entities.Complaint{}, entities.Incident{}, errs.Invalid("id", "required")
	}
	complaintPut, storedComplaint, err := s.Complaints.versionedPut(complaint)
	if err != nil {
		return entities.Complaint{}, entities.Incident{}, err
	}
	storedIncident := incident.Clone().Stamp(1, s.Incidents.now())
	incidentAV, err := s.Incidents.codec.encode(storedIncident)
	if err != nil {
		return entities.Complaint{}, entities.Incident{}, err
	}

	_, err = s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: complaintPut},
			{Put: &types.Put{
				TableName:           aws.String(s.Incidents.table),
				Item:                incidentAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
		},
	})
	if err != nil {
		if tce, ok := asTransactionCanceled(err); ok {
			reasons := cancellationReasons(tce)
			zap.L().Warn("[complaint][repository] escalation transaction cancelled",
				zap.String("complaint_id", complaint.ID),
				zap.String("incident_id", incident.ID),
				zap.String("reasons", reasons))
			return entities.Complaint{}, entities.Incident{}, fmt.Errorf("escalate complaint %s (%s): %w", complaint.ID, reasons, errs.ErrConcurrentModification)
		}
		return entities.Complaint{}, entities.Incident{}, err
	}
	return storedComplaint, storedIncident, nil
}

func cancellationReasons(tce *types.TransactionCanceledException) string {
	codes := make([]string, 0, len(tce.CancellationReasons))
	for _, r := range tce.CancellationReasons {
		codes = append(codes, aws.ToString(r.Code))
	}
	return strings.Join(codes, ",")
}
