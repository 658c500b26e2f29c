package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	mock_repository "github.com/SerikaYuzuki/WordApp/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLBlobMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *SQLBlobR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return NewSQLBlobRepository(db, sqlx.DOLLAR)
}

func TestSQLBlobR_Blob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		f         func(*mock_repository.MockQueryI)
		want      []byte
		wantErr   bool
		wantErrIs error
	}{
		{
			name: "success",
			key:  "SavedWords",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "SavedWords").DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.True(t, strings.Contains(query, "$1"))
						*(dest.(*string)) = `[{"word":"go"}]`
						return nil
					})
			},
			want: []byte(`[{"word":"go"}]`),
		},
		{
			name: "no rows",
			key:  "SavedWords",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr:   true,
			wantErrIs: models.ErrNotFound,
		},
		{
			name: "db error",
			key:  "SavedWords",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
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

			blobR := newSQLBlobMock(t, ctrl, tt.f)

			got, err := blobR.Blob(context.Background(), tt.key)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				} else {
					assert.NotErrorIs(t, err, models.ErrNotFound)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQLBlobR_SaveBlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "SavedWords", "[]").Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
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

			blobR := newSQLBlobMock(t, ctrl, tt.f)

			err := blobR.SaveBlob(context.Background(), "SavedWords", []byte("[]"))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
