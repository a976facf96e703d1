package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/bookswap/bookswap/bookswap/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockExchangeStore is a mock of ExchangeStore interface.
type MockExchangeStore struct {
	ctrl     *gomock.Controller
	recorder *MockExchangeStoreMockRecorder
	isgomock struct{}
}

// MockExchangeStoreMockRecorder is the mock recorder for MockExchangeStore.
type MockExchangeStoreMockRecorder struct {
	mock *MockExchangeStore
}

// NewMockExchangeStore creates a new mock instance.
func NewMockExchangeStore(ctrl *gomock.Controller) *MockExchangeStore {
	mock := &MockExchangeStore{ctrl: ctrl}
	mock.recorder = &MockExchangeStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExchangeStore) EXPECT() *MockExchangeStoreMockRecorder {
	return m.recorder
}

// CountCompletedInvolving mocks base method.
func (m *MockExchangeStore) CountCompletedInvolving(ctx context.Context, userID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountCompletedInvolving", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountCompletedInvolving indicates an expected call of CountCompletedInvolving.
func (mr *MockExchangeStoreMockRecorder) CountCompletedInvolving(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountCompletedInvolving", reflect.TypeOf((*MockExchangeStore)(nil).CountCompletedInvolving), ctx, userID)
}

// CountRejectedNonEmpty mocks base method.
func (m *MockExchangeStore) CountRejectedNonEmpty(ctx context.Context, userID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountRejectedNonEmpty", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountRejectedNonEmpty indicates an expected call of CountRejectedNonEmpty.
func (mr *MockExchangeStoreMockRecorder) CountRejectedNonEmpty(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountRejectedNonEmpty", reflect.TypeOf((*MockExchangeStore)(nil).CountRejectedNonEmpty), ctx, userID)
}

// CountInitiated mocks base method.
func (m *MockExchangeStore) CountInitiated(ctx context.Context, userID int64) (int, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountInitiated", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CountInitiated indicates an expected call of CountInitiated.
func (mr *MockExchangeStoreMockRecorder) CountInitiated(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountInitiated", reflect.TypeOf((*MockExchangeStore)(nil).CountInitiated), ctx, userID)
}

// MockReviewStore is a mock of ReviewStore interface.
type MockReviewStore struct {
	ctrl     *gomock.Controller
	recorder *MockReviewStoreMockRecorder
	isgomock struct{}
}

// MockReviewStoreMockRecorder is the mock recorder for MockReviewStore.
type MockReviewStoreMockRecorder struct {
	mock *MockReviewStore
}

// NewMockReviewStore creates a new mock instance.
func NewMockReviewStore(ctrl *gomock.Controller) *MockReviewStore {
	mock := &MockReviewStore{ctrl: ctrl}
	mock.recorder = &MockReviewStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewStore) EXPECT() *MockReviewStoreMockRecorder {
	return m.recorder
}

// GetByRatedID mocks base method.
func (m *MockReviewStore) GetByRatedID(ctx context.Context, userID int64) ([]*models.Review, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByRatedID", ctx, userID)
	ret0, _ := ret[0].([]*models.Review)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByRatedID indicates an expected call of GetByRatedID.
func (mr *MockReviewStoreMockRecorder) GetByRatedID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByRatedID", reflect.TypeOf((*MockReviewStore)(nil).GetByRatedID), ctx, userID)
}

// MockConversationStore is a mock of ConversationStore interface.
type MockConversationStore struct {
	ctrl     *gomock.Controller
	recorder *MockConversationStoreMockRecorder
	isgomock struct{}
}

// MockConversationStoreMockRecorder is the mock recorder for MockConversationStore.
type MockConversationStoreMockRecorder struct {
	mock *MockConversationStore
}

// NewMockConversationStore creates a new mock instance.
func NewMockConversationStore(ctrl *gomock.Controller) *MockConversationStore {
	mock := &MockConversationStore{ctrl: ctrl}
	mock.recorder = &MockConversationStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConversationStore) EXPECT() *MockConversationStoreMockRecorder {
	return m.recorder
}

// GetByParticipant mocks base method.
func (m *MockConversationStore) GetByParticipant(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByParticipant", ctx, userID)
	ret0, _ := ret[0].([]*models.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByParticipant indicates an expected call of GetByParticipant.
func (mr *MockConversationStoreMockRecorder) GetByParticipant(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByParticipant", reflect.TypeOf((*MockConversationStore)(nil).GetByParticipant), ctx, userID)
}

// MockBookStore is a mock of BookStore interface.
type MockBookStore struct {
	ctrl     *gomock.Controller
	recorder *MockBookStoreMockRecorder
	isgomock struct{}
}

// MockBookStoreMockRecorder is the mock recorder for MockBookStore.
type MockBookStoreMockRecorder struct {
	mock *MockBookStore
}

// NewMockBookStore creates a new mock instance.
func NewMockBookStore(ctrl *gomock.Controller) *MockBookStore {
	mock := &MockBookStore{ctrl: ctrl}
	mock.recorder = &MockBookStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookStore) EXPECT() *MockBookStoreMockRecorder {
	return m.recorder
}

// CountByOwner mocks base method.
func (m *MockBookStore) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByOwner", ctx, ownerID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByOwner indicates an expected call of CountByOwner.
func (mr *MockBookStoreMockRecorder) CountByOwner(ctx, ownerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByOwner", reflect.TypeOf((*MockBookStore)(nil).CountByOwner), ctx, ownerID)
}

// MockWishlistStore is a mock of WishlistStore interface.
type MockWishlistStore struct {
	ctrl     *gomock.Controller
	recorder *MockWishlistStoreMockRecorder
	isgomock struct{}
}

// MockWishlistStoreMockRecorder is the mock recorder for MockWishlistStore.
type MockWishlistStoreMockRecorder struct {
	mock *MockWishlistStore
}

// NewMockWishlistStore creates a new mock instance.
func NewMockWishlistStore(ctrl *gomock.Controller) *MockWishlistStore {
	mock := &MockWishlistStore{ctrl: ctrl}
	mock.recorder = &MockWishlistStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWishlistStore) EXPECT() *MockWishlistStoreMockRecorder {
	return m.recorder
}

// CountByUserID mocks base method.
func (m *MockWishlistStore) CountByUserID(ctx context.Context, userID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByUserID", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByUserID indicates an expected call of CountByUserID.
func (mr *MockWishlistStoreMockRecorder) CountByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByUserID", reflect.TypeOf((*MockWishlistStore)(nil).CountByUserID), ctx, userID)
}

// MockAchievementStore is a mock of AchievementStore interface.
type MockAchievementStore struct {
	ctrl     *gomock.Controller
	recorder *MockAchievementStoreMockRecorder
	isgomock struct{}
}

// MockAchievementStoreMockRecorder is the mock recorder for MockAchievementStore.
type MockAchievementStoreMockRecorder struct {
	mock *MockAchievementStore
}

// NewMockAchievementStore creates a new mock instance.
func NewMockAchievementStore(ctrl *gomock.Controller) *MockAchievementStore {
	mock := &MockAchievementStore{ctrl: ctrl}
	mock.recorder = &MockAchievementStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAchievementStore) EXPECT() *MockAchievementStoreMockRecorder {
	return m.recorder
}

// SumPoints mocks base method.
func (m *MockAchievementStore) SumPoints(ctx context.Context, userID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumPoints", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SumPoints indicates an expected call of SumPoints.
func (mr *MockAchievementStoreMockRecorder) SumPoints(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumPoints", reflect.TypeOf((*MockAchievementStore)(nil).SumPoints), ctx, userID)
}

// Grant mocks base method.
func (m *MockAchievementStore) Grant(ctx context.Context, userID int64, achievementID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Grant", ctx, userID, achievementID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Grant indicates an expected call of Grant.
func (mr *MockAchievementStoreMockRecorder) Grant(ctx, userID, achievementID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Grant", reflect.TypeOf((*MockAchievementStore)(nil).Grant), ctx, userID, achievementID)
}

// MockUserStore is a mock of UserStore interface.
type MockUserStore struct {
	ctrl     *gomock.Controller
	recorder *MockUserStoreMockRecorder
	isgomock struct{}
}

// MockUserStoreMockRecorder is the mock recorder for MockUserStore.
type MockUserStoreMockRecorder struct {
	mock *MockUserStore
}

// NewMockUserStore creates a new mock instance.
func NewMockUserStore(ctrl *gomock.Controller) *MockUserStore {
	mock := &MockUserStore{ctrl: ctrl}
	mock.recorder = &MockUserStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserStore) EXPECT() *MockUserStoreMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserStoreMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserStore)(nil).GetByID), ctx, id)
}

// GetAllIDs mocks base method.
func (m *MockUserStore) GetAllIDs(ctx context.Context) ([]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllIDs", ctx)
	ret0, _ := ret[0].([]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllIDs indicates an expected call of GetAllIDs.
func (mr *MockUserStoreMockRecorder) GetAllIDs(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllIDs", reflect.TypeOf((*MockUserStore)(nil).GetAllIDs), ctx)
}

// MockRankingStore is a mock of RankingStore interface.
type MockRankingStore struct {
	ctrl     *gomock.Controller
	recorder *MockRankingStoreMockRecorder
	isgomock struct{}
}

// MockRankingStoreMockRecorder is the mock recorder for MockRankingStore.
type MockRankingStoreMockRecorder struct {
	mock *MockRankingStore
}

// NewMockRankingStore creates a new mock instance.
func NewMockRankingStore(ctrl *gomock.Controller) *MockRankingStore {
	mock := &MockRankingStore{ctrl: ctrl}
	mock.recorder = &MockRankingStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRankingStore) EXPECT() *MockRankingStoreMockRecorder {
	return m.recorder
}

// GetByUserID mocks base method.
func (m *MockRankingStore) GetByUserID(ctx context.Context, userID int64) (*models.UserRanking, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", ctx, userID)
	ret0, _ := ret[0].(*models.UserRanking)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockRankingStoreMockRecorder) GetByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockRankingStore)(nil).GetByUserID), ctx, userID)
}

// Upsert mocks base method.
func (m *MockRankingStore) Upsert(ctx context.Context, ranking *models.UserRanking) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, ranking)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockRankingStoreMockRecorder) Upsert(ctx, ranking any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockRankingStore)(nil).Upsert), ctx, ranking)
}

// GetAllOrdered mocks base method.
func (m *MockRankingStore) GetAllOrdered(ctx context.Context) ([]*models.UserRanking, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllOrdered", ctx)
	ret0, _ := ret[0].([]*models.UserRanking)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllOrdered indicates an expected call of GetAllOrdered.
func (mr *MockRankingStoreMockRecorder) GetAllOrdered(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllOrdered", reflect.TypeOf((*MockRankingStore)(nil).GetAllOrdered), ctx)
}

// UpdateRank mocks base method.
func (m *MockRankingStore) UpdateRank(ctx context.Context, userID int64, rank, previousRank int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateRank", ctx, userID, rank, previousRank)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateRank indicates an expected call of UpdateRank.
func (mr *MockRankingStoreMockRecorder) UpdateRank(ctx, userID, rank, previousRank any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateRank", reflect.TypeOf((*MockRankingStore)(nil).UpdateRank), ctx, userID, rank, previousRank)
}

// Update mocks base method.
func (m *MockRankingStore) Update(ctx context.Context, ranking *models.UserRanking) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, ranking)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRankingStoreMockRecorder) Update(ctx, ranking any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRankingStore)(nil).Update), ctx, ranking)
}

// GetDecayCandidates mocks base method.
func (m *MockRankingStore) GetDecayCandidates(ctx context.Context, inactiveSince time.Time) ([]*models.UserRanking, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDecayCandidates", ctx, inactiveSince)
	ret0, _ := ret[0].([]*models.UserRanking)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDecayCandidates indicates an expected call of GetDecayCandidates.
func (mr *MockRankingStoreMockRecorder) GetDecayCandidates(ctx, inactiveSince any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDecayCandidates", reflect.TypeOf((*MockRankingStore)(nil).GetDecayCandidates), ctx, inactiveSince)
}

// ResetWeeklyCounters mocks base method.
func (m *MockRankingStore) ResetWeeklyCounters(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResetWeeklyCounters", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// ResetWeeklyCounters indicates an expected call of ResetWeeklyCounters.
func (mr *MockRankingStoreMockRecorder) ResetWeeklyCounters(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResetWeeklyCounters", reflect.TypeOf((*MockRankingStore)(nil).ResetWeeklyCounters), ctx)
}

// IncrementWeeklyExchanges mocks base method.
func (m *MockRankingStore) IncrementWeeklyExchanges(ctx context.Context, userID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementWeeklyExchanges", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementWeeklyExchanges indicates an expected call of IncrementWeeklyExchanges.
func (mr *MockRankingStoreMockRecorder) IncrementWeeklyExchanges(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementWeeklyExchanges", reflect.TypeOf((*MockRankingStore)(nil).IncrementWeeklyExchanges), ctx, userID)
}

// IncrementWeeklyReviews mocks base method.
func (m *MockRankingStore) IncrementWeeklyReviews(ctx context.Context, userID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementWeeklyReviews", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementWeeklyReviews indicates an expected call of IncrementWeeklyReviews.
func (mr *MockRankingStoreMockRecorder) IncrementWeeklyReviews(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementWeeklyReviews", reflect.TypeOf((*MockRankingStore)(nil).IncrementWeeklyReviews), ctx, userID)
}

// TouchActivity mocks base method.
func (m *MockRankingStore) TouchActivity(ctx context.Context, userID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TouchActivity", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// TouchActivity indicates an expected call of TouchActivity.
func (mr *MockRankingStoreMockRecorder) TouchActivity(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TouchActivity", reflect.TypeOf((*MockRankingStore)(nil).TouchActivity), ctx, userID)
}

// GetLeaderboard mocks base method.
func (m *MockRankingStore) GetLeaderboard(ctx context.Context, limit, offset int) ([]*models.UserRanking, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLeaderboard", ctx, limit, offset)
	ret0, _ := ret[0].([]*models.UserRanking)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLeaderboard indicates an expected call of GetLeaderboard.
func (mr *MockRankingStoreMockRecorder) GetLeaderboard(ctx, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLeaderboard", reflect.TypeOf((*MockRankingStore)(nil).GetLeaderboard), ctx, limit, offset)
}
