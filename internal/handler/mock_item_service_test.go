package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ItemRegistry_Go/internal/domain"
	"github.com/osse101/ItemRegistry_Go/internal/item"
)

// MockItemService mocks the ItemService interface
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Lookup(id int) (*domain.Item, bool) {
	args := m.Called(id)
	it, _ := args.Get(0).(*domain.Item)
	return it, args.Bool(1)
}

func (m *MockItemService) SearchByAlias(name string) (*domain.Item, bool) {
	args := m.Called(name)
	it, _ := args.Get(0).(*domain.Item)
	return it, args.Bool(1)
}

func (m *MockItemService) ClassOf(id int) (domain.ItemClass, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.ItemClass), args.Bool(1)
}

func (m *MockItemService) IsEquipment(id int) bool {
	return m.Called(id).Bool(0)
}

func (m *MockItemService) IsWearable(id int) bool {
	return m.Called(id).Bool(0)
}

func (m *MockItemService) All() []*domain.Item {
	args := m.Called()
	items, _ := args.Get(0).([]*domain.Item)
	return items
}

func (m *MockItemService) Len() int {
	return m.Called().Int(0)
}

func (m *MockItemService) Generation() uint64 {
	return m.Called().Get(0).(uint64)
}

// MockReloader mocks the Reloader interface
type MockReloader struct {
	mock.Mock
}

func (m *MockReloader) Reload(ctx context.Context, paths []string) ([]*item.LoadResult, error) {
	args := m.Called(ctx, paths)
	results, _ := args.Get(0).([]*item.LoadResult)
	return results, args.Error(1)
}
