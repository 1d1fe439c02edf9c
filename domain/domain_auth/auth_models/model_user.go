package auth_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 系统用户账户
type User struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`         // 显示名称
	Email     string             `bson:"email" json:"email"`       // 登录邮箱（唯一）
	Password  string             `bson:"password" json:"-"`        // bcrypt 哈希
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
