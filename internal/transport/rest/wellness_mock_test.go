package rest

import (
	"context"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
	"github.com/heartmarshall/moodmate-backend/internal/service/responder"
	"github.com/heartmarshall/moodmate-backend/internal/service/wellness"
)

// wellnessServiceMock is a moq-style mock of wellnessService. Unset funcs panic.
type wellnessServiceMock struct {
	LogMoodFunc                 func(ctx context.Context, input wellness.LogMoodInput) (wellness.LogMoodResult, error)
	GetMoodHistoryFunc          func(ctx context.Context) (domain.MoodHistory, error)
	ListExercisesFunc           func() []domain.Exercise
	ListSupportResourcesFunc    func() []domain.SupportResource
	CompleteExerciseFunc        func(ctx context.Context, key string) (domain.ExerciseCompletion, error)
	SendChatMessageFunc         func(ctx context.Context, text string) (responder.ChatReply, error)
	OpenCheckinFunc             func(ctx context.Context) (domain.Checkin, error)
	SendMoodCheckinResponseFunc func(ctx context.Context, text string) (domain.Checkin, error)
	CloseCheckinFunc            func() domain.Checkin
	CheckinStatusFunc           func() domain.Checkin
	GetDashboardFunc            func(ctx context.Context) (domain.Dashboard, error)
	SetUserNameFunc             func(ctx context.Context, input wellness.SetUserNameInput) (string, error)
}

func (m *wellnessServiceMock) LogMood(ctx context.Context, input wellness.LogMoodInput) (wellness.LogMoodResult, error) {
	if m.LogMoodFunc == nil {
		panic("wellnessServiceMock.LogMoodFunc: method is nil but wellnessService.LogMood was just called")
	}
	return m.LogMoodFunc(ctx, input)
}

func (m *wellnessServiceMock) GetMoodHistory(ctx context.Context) (domain.MoodHistory, error) {
	if m.GetMoodHistoryFunc == nil {
		panic("wellnessServiceMock.GetMoodHistoryFunc: method is nil but wellnessService.GetMoodHistory was just called")
	}
	return m.GetMoodHistoryFunc(ctx)
}

func (m *wellnessServiceMock) ListExercises() []domain.Exercise {
	if m.ListExercisesFunc == nil {
		panic("wellnessServiceMock.ListExercisesFunc: method is nil but wellnessService.ListExercises was just called")
	}
	return m.ListExercisesFunc()
}

func (m *wellnessServiceMock) ListSupportResources() []domain.SupportResource {
	if m.ListSupportResourcesFunc == nil {
		panic("wellnessServiceMock.ListSupportResourcesFunc: method is nil but wellnessService.ListSupportResources was just called")
	}
	return m.ListSupportResourcesFunc()
}

func (m *wellnessServiceMock) CompleteExercise(ctx context.Context, key string) (domain.ExerciseCompletion, error) {
	if m.CompleteExerciseFunc == nil {
		panic("wellnessServiceMock.CompleteExerciseFunc: method is nil but wellnessService.CompleteExercise was just called")
	}
	return m.CompleteExerciseFunc(ctx, key)
}

func (m *wellnessServiceMock) SendChatMessage(ctx context.Context, text string) (responder.ChatReply, error) {
	if m.SendChatMessageFunc == nil {
		panic("wellnessServiceMock.SendChatMessageFunc: method is nil but wellnessService.SendChatMessage was just called")
	}
	return m.SendChatMessageFunc(ctx, text)
}

func (m *wellnessServiceMock) OpenCheckin(ctx context.Context) (domain.Checkin, error) {
	if m.OpenCheckinFunc == nil {
		panic("wellnessServiceMock.OpenCheckinFunc: method is nil but wellnessService.OpenCheckin was just called")
	}
	return m.OpenCheckinFunc(ctx)
}

func (m *wellnessServiceMock) SendMoodCheckinResponse(ctx context.Context, text string) (domain.Checkin, error) {
	if m.SendMoodCheckinResponseFunc == nil {
		panic("wellnessServiceMock.SendMoodCheckinResponseFunc: method is nil but wellnessService.SendMoodCheckinResponse was just called")
	}
	return m.SendMoodCheckinResponseFunc(ctx, text)
}

func (m *wellnessServiceMock) CloseCheckin() domain.Checkin {
	if m.CloseCheckinFunc == nil {
		panic("wellnessServiceMock.CloseCheckinFunc: method is nil but wellnessService.CloseCheckin was just called")
	}
	return m.CloseCheckinFunc()
}

func (m *wellnessServiceMock) CheckinStatus() domain.Checkin {
	if m.CheckinStatusFunc == nil {
		panic("wellnessServiceMock.CheckinStatusFunc: method is nil but wellnessService.CheckinStatus was just called")
	}
	return m.CheckinStatusFunc()
}

func (m *wellnessServiceMock) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	if m.GetDashboardFunc == nil {
		panic("wellnessServiceMock.GetDashboardFunc: method is nil but wellnessService.GetDashboard was just called")
	}
	return m.GetDashboardFunc(ctx)
}

func (m *wellnessServiceMock) SetUserName(ctx context.Context, input wellness.SetUserNameInput) (string, error) {
	if m.SetUserNameFunc == nil {
		panic("wellnessServiceMock.SetUserNameFunc: method is nil but wellnessService.SetUserName was just called")
	}
	return m.SetUserNameFunc(ctx, input)
}
