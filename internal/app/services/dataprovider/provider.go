package dataprovider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/app/services/shared/ratelimiter"
	"agenda-care-service/internal/app/services/shared/restclient"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/exceptions"
	"agenda-care-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// FhirDataProvider is the generic CRUD surface behind the admin frontend:
// every resource type is served by the same seven operations against
// {FHIR_BASE_URL}/{ResourceType}[/{id}]. Types with a registered transformer
// are returned in their show shape; the rest pass through as raw JSON.
type FhirDataProvider struct {
	client       *restclient.RestClient
	limiter      *ratelimiter.OutboundLimiter
	logger       *zap.Logger
	transformers map[string]contracts.ResourceTransformer
}

func NewFhirDataProvider(
	client *restclient.RestClient,
	limiter *ratelimiter.OutboundLimiter,
	logger *zap.Logger,
	transformers map[string]contracts.ResourceTransformer,
) *FhirDataProvider {
	return &FhirDataProvider{
		client:       client,
		limiter:      limiter,
		logger:       logger,
		transformers: transformers,
	}
}

func (p *FhirDataProvider) GetList(ctx context.Context, resourceType string, params contracts.ListParams) (any, int, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, 0, exceptions.ErrSendRequest(err)
	}

	endpoint := resourceType
	if query := encodeFilters(params.Filters); query != "" {
		endpoint += "?" + query
	}
	resp, err := p.client.Get(ctx, endpoint)
	if err != nil {
		return nil, 0, err
	}
	if !resp.OK() {
		return nil, 0, exceptions.ErrFHIRRequestFailed(resp.StatusCode, string(resp.Body))
	}

	raws, total, err := unwrapBundle(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	if transformer, ok := p.transformers[resourceType]; ok {
		shows, err := transformer.TransformList(raws)
		if err != nil {
			return nil, 0, err
		}
		return shows, total, nil
	}
	return raws, total, nil
}

func (p *FhirDataProvider) GetOne(ctx context.Context, resourceType, id string) (any, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendRequest(err)
	}

	resp, err := p.client.Get(ctx, fmt.Sprintf("%s/%s", resourceType, id))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, exceptions.ErrFHIRRequestFailed(resp.StatusCode, string(resp.Body))
	}
	return p.transformOne(resourceType, resp.Body)
}

func (p *FhirDataProvider) GetMany(ctx context.Context, resourceType string, ids []string) (any, error) {
	filters := map[string]string{constvars.QueryParamID: joinIDs(ids)}
	shows, _, err := p.GetList(ctx, resourceType, contracts.ListParams{Filters: filters})
	return shows, err
}

func (p *FhirDataProvider) Create(ctx context.Context, resourceType string, payload map[string]any) (any, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendRequest(err)
	}

	payload["resourceType"] = resourceType
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := p.client.Post(ctx, resourceType, body, constvars.MIMEApplicationFHIRJSON)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, exceptions.ErrFHIRRequestFailed(resp.StatusCode, string(resp.Body))
	}

	p.logger.Info("resource created", zap.String(constvars.LoggingResourceTypeKey, resourceType))
	return p.transformOne(resourceType, resp.Body)
}

// Update merges the caller's fields over the stored resource before the PUT,
// so partial edit forms never drop fields they did not touch.
func (p *FhirDataProvider) Update(ctx context.Context, resourceType, id string, payload map[string]any) (any, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendRequest(err)
	}

	previous, err := p.client.Get(ctx, fmt.Sprintf("%s/%s", resourceType, id))
	if err != nil {
		return nil, err
	}
	if !previous.OK() {
		return nil, exceptions.ErrFHIRRequestFailed(previous.StatusCode, string(previous.Body))
	}

	merged := map[string]any{}
	if err := json.Unmarshal(previous.Body, &merged); err != nil {
		return nil, exceptions.ErrFHIRDecode(err, resourceType)
	}
	for key, value := range payload {
		merged[key] = value
	}
	merged["resourceType"] = resourceType
	merged["id"] = id

	body, err := json.Marshal(merged)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := p.client.Put(ctx, fmt.Sprintf("%s/%s", resourceType, id), body, constvars.MIMEApplicationFHIRJSON)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, exceptions.ErrFHIRRequestFailed(resp.StatusCode, string(resp.Body))
	}

	p.logger.Info("resource updated",
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, id))
	return p.transformOne(resourceType, resp.Body)
}

func (p *FhirDataProvider) Delete(ctx context.Context, resourceType, id string) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return exceptions.ErrSendRequest(err)
	}

	resp, err := p.client.Delete(ctx, fmt.Sprintf("%s/%s", resourceType, id))
	if err != nil {
		return err
	}
	// 400 on delete means other resources still reference this one.
	if resp.StatusCode == constvars.StatusBadRequest {
		return exceptions.ErrResourceStillReferenced(fmt.Errorf("%s/%s", resourceType, id))
	}
	if !resp.OK() {
		return exceptions.ErrFHIRRequestFailed(resp.StatusCode, string(resp.Body))
	}

	p.logger.Info("resource deleted",
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, id))
	return nil
}

// DeleteMany deletes sequentially and stops on the first failure, returning
// the ids removed so far alongside the error.
func (p *FhirDataProvider) DeleteMany(ctx context.Context, resourceType string, ids []string) ([]string, error) {
	deleted := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := p.Delete(ctx, resourceType, id); err != nil {
			return deleted, err
		}
		deleted = append(deleted, id)
	}
	return deleted, nil
}

func (p *FhirDataProvider) transformOne(resourceType string, body []byte) (any, error) {
	if transformer, ok := p.transformers[resourceType]; ok {
		return transformer.TransformShow(body)
	}
	return json.RawMessage(body), nil
}

func encodeFilters(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	values := url.Values{}
	for key, value := range filters {
		values.Set(key, value)
	}
	return values.Encode()
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

func unwrapBundle(body []byte) ([]json.RawMessage, int, error) {
	var bundle fhir_dto.Bundle
	if err := json.Unmarshal(body, &bundle); err != nil {
		return nil, 0, exceptions.ErrFHIRDecode(err, constvars.ResourceBundle)
	}
	raws := make([]json.RawMessage, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		raws = append(raws, entry.Resource)
	}
	total := bundle.Total
	if total == 0 {
		total = len(raws)
	}
	return raws, total, nil
}
