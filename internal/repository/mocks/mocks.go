package mocks

import (
	"context"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/template"
	"github.com/remvana/nestmap/internal/domain/trip"
	"github.com/stretchr/testify/mock"
)

// TripRepository is a mock for trip.Repository.
type TripRepository struct {
	mock.Mock
}

func (m *TripRepository) Create(ctx context.Context, tenantID string, t *trip.Trip) error {
	args := m.Called(ctx, tenantID, t)
	return args.Error(0)
}

func (m *TripRepository) Get(ctx context.Context, tenantID, id string) (*trip.Trip, error) {
	args := m.Called(ctx, tenantID, id)
	if t, ok := args.Get(0).(*trip.Trip); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TripRepository) Update(ctx context.Context, tenantID string, t *trip.Trip) error {
	args := m.Called(ctx, tenantID, t)
	return args.Error(0)
}

func (m *TripRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *TripRepository) List(ctx context.Context, tenantID string) ([]trip.TripSummary, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]trip.TripSummary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Create(ctx context.Context, tenantID string, act *activity.Activity) error {
	args := m.Called(ctx, tenantID, act)
	return args.Error(0)
}

func (m *ActivityRepository) Get(ctx context.Context, tenantID, id string) (*activity.Activity, error) {
	args := m.Called(ctx, tenantID, id)
	if act, ok := args.Get(0).(*activity.Activity); ok {
		return act, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) Update(ctx context.Context, tenantID string, act *activity.Activity) error {
	args := m.Called(ctx, tenantID, act)
	return args.Error(0)
}

func (m *ActivityRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *ActivityRepository) ListByTrip(ctx context.Context, tenantID, tripID string, opts activity.ListOptions) ([]activity.Activity, error) {
	args := m.Called(ctx, tenantID, tripID, opts)
	if list, ok := args.Get(0).([]activity.Activity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TemplateRepository is a mock for template.Repository.
type TemplateRepository struct {
	mock.Mock
}

func (m *TemplateRepository) Create(ctx context.Context, tmpl *template.Template) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *TemplateRepository) Get(ctx context.Context, id string) (*template.Template, error) {
	args := m.Called(ctx, id)
	if tmpl, ok := args.Get(0).(*template.Template); ok {
		return tmpl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TemplateRepository) List(ctx context.Context, opts template.ListOptions) ([]template.TemplateSummary, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]template.TemplateSummary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TemplateRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
