// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
)

// PathFunc builds the collection path of a resource for the given group.
// Resource types not scoped to a group ignore the argument.
type PathFunc func(groupID string) string

// Collection paths of the Spajzka API.
var (
	ItemsPath    PathFunc = func(string) string { return "/api/item" }
	GroupsPath   PathFunc = func(string) string { return "/api/group" }
	PantryPath   PathFunc = func(g string) string { return "/api/group/" + g + "/pantry" }
	ShoppingPath PathFunc = func(g string) string { return "/api/group/" + g + "/shopping" }
	RecipesPath  PathFunc = func(g string) string { return "/api/group/" + g + "/recipe" }
)

type resource[T any] struct {
	client *Client
	path   PathFunc
}

// NewResource builds a [Resource] endpoint for one resource type over the
// shared client.
func NewResource[T any](client *Client, path PathFunc) Resource[T] {
	return &resource[T]{client: client, path: path}
}

func (r *resource[T]) List(ctx context.Context, groupID string) ([]T, error) {
	resp, err := r.client.request(ctx).Get(r.path(groupID))
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []T
	if err = decodeBody(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("list response: %w", err)
	}
	return items, nil
}

func (r *resource[T]) Create(ctx context.Context, groupID string, v T) (T, error) {
	var created T

	resp, err := r.client.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(v).
		Post(r.path(groupID))
	if err != nil {
		return created, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return created, err
	}

	if err = decodeBody(resp.Body(), &created); err != nil {
		return created, fmt.Errorf("create response: %w", err)
	}
	return created, nil
}

func (r *resource[T]) Update(ctx context.Context, groupID, id string, v T) (T, error) {
	var updated T

	resp, err := r.client.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(v).
		Put(r.path(groupID) + "/" + id)
	if err != nil {
		return updated, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return updated, err
	}

	if err = decodeBody(resp.Body(), &updated); err != nil {
		return updated, fmt.Errorf("update response: %w", err)
	}
	return updated, nil
}

func (r *resource[T]) Delete(ctx context.Context, groupID, id string) error {
	resp, err := r.client.request(ctx).Delete(r.path(groupID) + "/" + id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}
