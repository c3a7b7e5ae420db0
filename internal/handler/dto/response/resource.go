package response

import (
	"swimapi/internal/domain/resource"
)

type ResourceResponse struct {
	ResourceID   int64   `json:"resource_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	ResourceType string  `json:"resource_type"`
}

func FromResource(res *resource.Resource) *ResourceResponse {
	return &ResourceResponse{
		ResourceID:   res.ID,
		Name:         res.Name,
		Description:  res.Description,
		ResourceType: string(res.Type),
	}
}

func FromResources(resources []*resource.Resource) []*ResourceResponse {
	out := make([]*ResourceResponse, len(resources))
	for i, res := range resources {
		out[i] = FromResource(res)
	}
	return out
}
