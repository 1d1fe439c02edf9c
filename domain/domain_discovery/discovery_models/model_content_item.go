package discovery_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内容项类型
const (
	ItemKindItinerary   = "itinerary"
	ItemKindDeal        = "deal"
	ItemKindPromotion   = "promotion"
	ItemKindUser        = "user"
	ItemKindDestination = "destination"
)

// GeoPoint 地理坐标点
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// ContentItem 可推荐的内容项（行程、优惠、推广、用户、目的地）
// 引擎侧只读；由外部目录服务负责创建和修改
type ContentItem struct {
	// 系统保留字段
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	OwnerID   string             `bson:"owner_id" json:"ownerId"`     // 发布者用户唯一标识符
	Kind      string             `bson:"kind" json:"kind"`            // 内容类型: itinerary, deal, promotion, user, destination
	Public    bool               `bson:"public" json:"public"`        // 是否公开可见
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	// 展示字段
	Title         string     `bson:"title" json:"title"`
	Description   string     `bson:"description" json:"description"`
	CoverImageURL string     `bson:"cover_image_url" json:"coverImageUrl"`
	Categories    []string   `bson:"categories" json:"categories"`                    // 分类标签（如 "美食"、"徒步"）
	TravelStyle   string     `bson:"travel_style" json:"travelStyle"`                 // 旅行风格标签（如 "背包"、"奢华"）
	Activities    []string   `bson:"activities" json:"activities"`                    // 活动/明细条目
	Price         float64    `bson:"price" json:"price"`                              // 价格（仅 deal 等计价内容有意义）
	StartDate     *time.Time `bson:"start_date,omitempty" json:"startDate,omitempty"` // 行程/优惠开始日期
	EndDate       *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`     // 行程/优惠结束日期

	// 位置字段
	Location   string    `bson:"location" json:"location"`                         // 位置文本（自由文本，如 "东京, 日本"）
	Coordinate *GeoPoint `bson:"coordinate,omitempty" json:"coordinate,omitempty"` // 地理坐标（可选）

	// 搜索排序键（拼音表示，用于搜索和排序）
	TitlePinyin    []string `bson:"title_pinyin" json:"-"`
	LocationPinyin []string `bson:"location_pinyin" json:"-"`
}

// PrimaryCategory 首个分类标签，多样性重排使用
func (c *ContentItem) PrimaryCategory() string {
	if len(c.Categories) == 0 {
		return ""
	}
	return c.Categories[0]
}

// LastTouchedAt 创建时间与更新时间中较晚的一个
func (c *ContentItem) LastTouchedAt() time.Time {
	if c.UpdatedAt.After(c.CreatedAt) {
		return c.UpdatedAt
	}
	return c.CreatedAt
}
