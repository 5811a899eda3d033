package models

import "encoding/json"

// Page holds the items of a list endpoint. The server serves lists in two
// shapes depending on the view: a bare JSON array, or a pagination envelope
// {count, next, previous, results}. UnmarshalJSON accepts both so callers
// never need to care which one they got.
type Page[T any] struct {
	Count    int64
	Next     *string
	Previous *string
	Results  []T
}

type pageEnvelope[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func (p *Page[T]) UnmarshalJSON(data []byte) error {
	// Bare array shape.
	if len(data) > 0 && data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		p.Count = int64(len(items))
		p.Next = nil
		p.Previous = nil
		p.Results = items
		return nil
	}

	var env pageEnvelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	p.Count = env.Count
	p.Next = env.Next
	p.Previous = env.Previous
	p.Results = env.Results
	return nil
}
