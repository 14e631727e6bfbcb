package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/domain"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/internal/templates"
)

func newTemplateFixture(t *testing.T) (*TemplateService, *mockTemplateRepository, *mockWorkoutRepository) {
	t.Helper()
	tmpl := new(mockTemplateRepository)
	workouts := new(mockWorkoutRepository)
	svc := NewTemplateService(tmpl, workouts, testStatsCache(), testLogger())
	return svc, tmpl, workouts
}

func TestTemplateService_List_MergesUserAndBuiltIn(t *testing.T) {
	svc, tmpl, _ := newTemplateFixture(t)

	userID := int64(7)
	tmpl.On("ListByUser", mock.Anything, userID, domain.TemplateFilter{}).Return([]domain.WorkoutTemplate{
		{ID: 3, UserID: &userID, Name: "My Custom Split", Equipment: "dumbbell", Goal: "strength"},
	}, nil)

	views, err := svc.List(context.Background(), userID, domain.TemplateFilter{})
	require.NoError(t, err)
	require.Greater(t, len(views), len(templates.Catalog))

	// User templates come first, with the prefixed id.
	assert.Equal(t, "user-3", views[0].ID)
	assert.True(t, views[0].IsUserTemplate)
	assert.Equal(t, int64(3), views[0].UserTemplateID)
}

func TestTemplateService_List_FilterAppliesToBuiltIns(t *testing.T) {
	svc, tmpl, _ := newTemplateFixture(t)

	filter := domain.TemplateFilter{Equipment: templates.EquipmentBodyweight}
	tmpl.On("ListByUser", mock.Anything, int64(7), filter).Return([]domain.WorkoutTemplate{}, nil)

	views, err := svc.List(context.Background(), 7, filter)
	require.NoError(t, err)
	require.NotEmpty(t, views)
	for _, v := range views {
		assert.Equal(t, templates.EquipmentBodyweight, v.Equipment)
	}
}

func TestTemplateService_InstantiatePlan_FromBuiltIn(t *testing.T) {
	svc, _, workouts := newTemplateFixture(t)

	builtin := templates.Catalog[0]
	workouts.On("CreatePlan", mock.Anything, mock.MatchedBy(func(p *domain.WorkoutPlan) bool {
		return p.Name == "March Block" && len(p.Exercises) == len(builtin.Exercises)
	})).Return(nil)

	plan, err := svc.InstantiatePlan(context.Background(), 7, FromTemplateInput{
		TemplateID: builtin.ID,
		Name:       "March Block",
		Week:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, "March Block", plan.Name)
	workouts.AssertExpectations(t)
}

func TestTemplateService_InstantiatePlan_UnknownTemplate(t *testing.T) {
	svc, _, _ := newTemplateFixture(t)

	_, err := svc.InstantiatePlan(context.Background(), 7, FromTemplateInput{TemplateID: "no-such-template"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
}

func TestTemplateService_InstantiatePlan_RequiresSomeTemplate(t *testing.T) {
	svc, _, _ := newTemplateFixture(t)

	_, err := svc.InstantiatePlan(context.Background(), 7, FromTemplateInput{})
	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", appErrCode(t, err))
}
