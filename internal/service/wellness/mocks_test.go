package wellness

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
)

// recordStoreMock is a moq-style mock of recordStore. Unset funcs panic.
type recordStoreMock struct {
	AppendMoodFunc               func(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error)
	AppendExerciseCompletionFunc func(ctx context.Context, name string) (domain.ExerciseCompletion, error)
	AppendChatMessageFunc        func(ctx context.Context, content string) (domain.ChatMessage, error)
	LoadMoodEntriesFunc          func(ctx context.Context) ([]domain.MoodEntry, error)
	LoadExerciseCompletionsFunc  func(ctx context.Context) ([]domain.ExerciseCompletion, error)
	LoadChatMessagesFunc         func(ctx context.Context) ([]domain.ChatMessage, error)
	UserNameFunc                 func(ctx context.Context) (string, error)
	SetUserNameFunc              func(ctx context.Context, name string) error

	mu    sync.Mutex
	calls map[string]int
}

func (m *recordStoreMock) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

// Calls returns how many times the named method was invoked.
func (m *recordStoreMock) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *recordStoreMock) AppendMood(ctx context.Context, entry domain.MoodEntry) (domain.MoodEntry, error) {
	if m.AppendMoodFunc == nil {
		panic("recordStoreMock.AppendMoodFunc: method is nil but recordStore.AppendMood was just called")
	}
	m.record("AppendMood")
	return m.AppendMoodFunc(ctx, entry)
}

func (m *recordStoreMock) AppendExerciseCompletion(ctx context.Context, name string) (domain.ExerciseCompletion, error) {
	if m.AppendExerciseCompletionFunc == nil {
		panic("recordStoreMock.AppendExerciseCompletionFunc: method is nil but recordStore.AppendExerciseCompletion was just called")
	}
	m.record("AppendExerciseCompletion")
	return m.AppendExerciseCompletionFunc(ctx, name)
}

func (m *recordStoreMock) AppendChatMessage(ctx context.Context, content string) (domain.ChatMessage, error) {
	if m.AppendChatMessageFunc == nil {
		panic("recordStoreMock.AppendChatMessageFunc: method is nil but recordStore.AppendChatMessage was just called")
	}
	m.record("AppendChatMessage")
	return m.AppendChatMessageFunc(ctx, content)
}

func (m *recordStoreMock) LoadMoodEntries(ctx context.Context) ([]domain.MoodEntry, error) {
	if m.LoadMoodEntriesFunc == nil {
		panic("recordStoreMock.LoadMoodEntriesFunc: method is nil but recordStore.LoadMoodEntries was just called")
	}
	m.record("LoadMoodEntries")
	return m.LoadMoodEntriesFunc(ctx)
}

func (m *recordStoreMock) LoadExerciseCompletions(ctx context.Context) ([]domain.ExerciseCompletion, error) {
	if m.LoadExerciseCompletionsFunc == nil {
		panic("recordStoreMock.LoadExerciseCompletionsFunc: method is nil but recordStore.LoadExerciseCompletions was just called")
	}
	m.record("LoadExerciseCompletions")
	return m.LoadExerciseCompletionsFunc(ctx)
}

func (m *recordStoreMock) LoadChatMessages(ctx context.Context) ([]domain.ChatMessage, error) {
	if m.LoadChatMessagesFunc == nil {
		panic("recordStoreMock.LoadChatMessagesFunc: method is nil but recordStore.LoadChatMessages was just called")
	}
	m.record("LoadChatMessages")
	return m.LoadChatMessagesFunc(ctx)
}

func (m *recordStoreMock) UserName(ctx context.Context) (string, error) {
	if m.UserNameFunc == nil {
		panic("recordStoreMock.UserNameFunc: method is nil but recordStore.UserName was just called")
	}
	m.record("UserName")
	return m.UserNameFunc(ctx)
}

func (m *recordStoreMock) SetUserName(ctx context.Context, name string) error {
	if m.SetUserNameFunc == nil {
		panic("recordStoreMock.SetUserNameFunc: method is nil but recordStore.SetUserName was just called")
	}
	m.record("SetUserName")
	return m.SetUserNameFunc(ctx, name)
}
