package aws

import (
	"context"
	"fmt"
	"iter"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/imamik/janitor/internal/janitor"
)

// Route53API is the subset of the Route 53 client the janitor uses.
type Route53API interface {
	ListResourceRecordSets(ctx context.Context, params *route53.ListResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error)
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
}

// Records lists the record sets of a hosted zone and applies change batches.
type Records struct {
	api Route53API
}

// NewRecords creates a DNS record service from an AWS config.
func NewRecords(cfg aws.Config) *Records {
	return &Records{api: route53.NewFromConfig(cfg)}
}

// NewRecordsFromAPI wraps an existing Route 53 API implementation.
func NewRecordsFromAPI(api Route53API) *Records {
	return &Records{api: api}
}

// ListRecords yields every record set of the zone. Route 53 pages by the
// (name, type, set identifier) of the next record, so the loop carries all
// three forward until the response is no longer truncated.
func (c *Records) ListRecords(ctx context.Context, zoneID string) iter.Seq2[janitor.Record, error] {
	return func(yield func(janitor.Record, error) bool) {
		input := &route53.ListResourceRecordSetsInput{HostedZoneId: aws.String(zoneID)}
		for {
			page, err := c.api.ListResourceRecordSets(ctx, input)
			if err != nil {
				yield(janitor.Record{}, fmt.Errorf("failed to list records of zone %s: %w", zoneID, err))
				return
			}
			for _, rrs := range page.ResourceRecordSets {
				record := janitor.Record{
					Name: aws.ToString(rrs.Name),
					Type: string(rrs.Type),
					Raw:  rrs,
				}
				if !yield(record, nil) {
					return
				}
			}
			if !page.IsTruncated {
				return
			}
			input = &route53.ListResourceRecordSetsInput{
				HostedZoneId:          aws.String(zoneID),
				StartRecordName:       page.NextRecordName,
				StartRecordType:       page.NextRecordType,
				StartRecordIdentifier: page.NextRecordIdentifier,
			}
		}
	}
}

// SubmitChangeBatch applies every change of batch in a single
// ChangeResourceRecordSets request. Route 53 applies it atomically.
func (c *Records) SubmitChangeBatch(ctx context.Context, zoneID string, batch janitor.ChangeBatch) error {
	changes := make([]types.Change, 0, len(batch.Changes))
	for _, change := range batch.Changes {
		rrs, ok := change.Record.Raw.(types.ResourceRecordSet)
		if !ok {
			return fmt.Errorf("record %s carries no Route 53 record set", change.Record.Name)
		}
		changes = append(changes, types.Change{
			Action:            types.ChangeAction(change.Action),
			ResourceRecordSet: &rrs,
		})
	}

	_, err := c.api.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &types.ChangeBatch{
			Comment: aws.String(batch.Comment),
			Changes: changes,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to change records of zone %s: %w", zoneID, err)
	}
	return nil
}
