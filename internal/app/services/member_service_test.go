package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/memberapi/internal/app/models"
	"github.com/yigit/memberapi/internal/app/services/mocks"
	"github.com/yigit/memberapi/internal/pkg/apperrors"
)

func newServiceWithMock(t *testing.T) (MemberService, *mocks.MockMemberRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMemberRepository(ctrl)
	return NewMemberService(repo), repo
}

func mustMember(t *testing.T, id int64, name string) *models.Member {
	t.Helper()
	m, err := models.NewMemberBuilder().ID(id).Name(name).Gender(models.GenderMan).Build()
	require.NoError(t, err)
	return m
}

func TestMemberService_FindAll_OK(t *testing.T) {
	s, repo := newServiceWithMock(t)
	want := []*models.Member{mustMember(t, 1, "Lee"), mustMember(t, 2, "Kim")}
	repo.EXPECT().FindAll(gomock.Any()).Return(want, nil)

	got, err := s.FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMemberService_FindAll_NilBecomesEmpty(t *testing.T) {
	s, repo := newServiceWithMock(t)
	repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

	got, err := s.FindAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestMemberService_FindAll_Error(t *testing.T) {
	s, repo := newServiceWithMock(t)
	repo.EXPECT().FindAll(gomock.Any()).Return(nil, apperrors.ErrDatabaseUnavailable)

	_, err := s.FindAll(context.Background())
	require.ErrorIs(t, err, apperrors.ErrDatabaseUnavailable)
}

func TestMemberService_FindMemberOne_OK(t *testing.T) {
	s, repo := newServiceWithMock(t)
	want := mustMember(t, 1, "Lee")
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(want, nil)

	got, err := s.FindMemberOne(context.Background(), 1)
	require.NoError(t, err)
	require.Same(t, want, got)
}

func TestMemberService_FindMemberOne_InvalidID(t *testing.T) {
	for _, id := range []int64{0, -1} {
		s, _ := newServiceWithMock(t)

		_, err := s.FindMemberOne(context.Background(), id)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestMemberService_FindMemberOne_NotFound(t *testing.T) {
	s, repo := newServiceWithMock(t)
	repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, apperrors.ErrMemberNotFound)

	_, err := s.FindMemberOne(context.Background(), 9)
	require.ErrorIs(t, err, apperrors.ErrMemberNotFound)
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestMemberService_FindMemberOne_Wraps(t *testing.T) {
	s, repo := newServiceWithMock(t)
	boom := errors.New("boom")
	repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, boom)

	_, err := s.FindMemberOne(context.Background(), 3)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "error retrieving member")
}
