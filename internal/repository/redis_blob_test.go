package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	mock_repository "github.com/SerikaYuzuki/WordApp/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBlobR_Blob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		f         func(*mock_repository.MockRedisI)
		want      []byte
		wantErrIs error
		wantErr   bool
	}{
		{
			name: "success",
			f: func(mr *mock_repository.MockRedisI) {
				mr.EXPECT().Get(gomock.Any(), "wordapp:SavedWords").Return(redis.NewStringResult("[]", nil))
			},
			want: []byte("[]"),
		},
		{
			name: "missing key",
			f: func(mr *mock_repository.MockRedisI) {
				mr.EXPECT().Get(gomock.Any(), gomock.Any()).Return(redis.NewStringResult("", redis.Nil))
			},
			wantErr:   true,
			wantErrIs: models.ErrNotFound,
		},
		{
			name: "connection error",
			f: func(mr *mock_repository.MockRedisI) {
				mr.EXPECT().Get(gomock.Any(), gomock.Any()).Return(redis.NewStringResult("", errors.New("refused")))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock_repository.NewMockRedisI(ctrl)
			tt.f(client)

			got, err := NewRedisBlobRepository(client, "wordapp:").Blob(context.Background(), "SavedWords")
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRedisBlobR_SaveBlob(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_repository.NewMockRedisI(ctrl)
	client.EXPECT().Set(gomock.Any(), "wordapp:SavedWords", []byte("[]"), gomock.Any()).Return(redis.NewStatusResult("OK", nil))
	client.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.NewStatusResult("", errors.New("readonly")))

	r := NewRedisBlobRepository(client, "wordapp:")
	require.NoError(t, r.SaveBlob(context.Background(), "SavedWords", []byte("[]")))
	require.Error(t, r.SaveBlob(context.Background(), "SavedWords", []byte("[]")))
}
