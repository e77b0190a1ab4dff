package response

import "rentacar-api/internal/usecase/queries"

// ListEnvelope wraps collection payloads with paging details.
type ListEnvelope[T any] struct {
	Data    []T                 `json:"data"`
	Details queries.ListDetails `json:"details"`
}

func NewListEnvelope[T any](data []T, details queries.ListDetails) ListEnvelope[T] {
	if data == nil {
		data = []T{}
	}
	return ListEnvelope[T]{Data: data, Details: details}
}
