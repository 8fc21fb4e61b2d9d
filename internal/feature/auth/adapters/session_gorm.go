package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"quote_backend/internal/feature/auth/domain/entity"
	"quote_backend/internal/feature/auth/usecase"
)

// sessionGorm はSessionRepositoryインターフェースのGORM実装です。
// Redisが利用できない環境向けのフォールバックとして使用されます。
type sessionGorm struct {
	db *gorm.DB
}

var _ usecase.SessionRepository = (*sessionGorm)(nil)

// NewSessionGorm は指定されたDB接続でsessionGormの新しいインスタンスを生成します。
func NewSessionGorm(db *gorm.DB) *sessionGorm {
	return &sessionGorm{db: db}
}

// Create はセッションをデータベースに追加します。
func (r *sessionGorm) Create(ctx context.Context, s *entity.Session) error {
	return r.db.WithContext(ctx).Create(SessionModelFromEntity(s)).Error
}

// FindByID はIDでセッションを取得します。
// セッションが存在しない場合、usecase.ErrSessionNotFoundを返します。
func (r *sessionGorm) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var m SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Revoke はセッションに失効時刻を記録します。
func (r *sessionGorm) Revoke(ctx context.Context, id string) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", &now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 既に失効済みかは区別しない。存在しなければ未検出として扱う。
		var count int64
		if err := r.db.WithContext(ctx).Model(&SessionModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return usecase.ErrSessionNotFound
		}
	}
	return nil
}
