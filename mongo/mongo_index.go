package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Content Item Collection - 过滤字段 + 拼音优化
	contentItemCollection := db.Collection(domain.CollectionDiscoveryContentItem)
	createIndex(ctx, contentItemCollection, bson.D{{Key: "kind", Value: 1}}, "kind")
	createIndex(ctx, contentItemCollection, bson.D{{Key: "owner_id", Value: 1}}, "owner_id")
	createIndex(ctx, contentItemCollection, bson.D{{Key: "public", Value: 1}}, "public")
	createIndex(ctx, contentItemCollection, bson.D{{Key: "categories", Value: 1}}, "categories")
	createIndex(ctx, contentItemCollection, bson.D{{Key: "location", Value: 1}}, "location")
	createIndex(ctx, contentItemCollection, bson.D{{Key: "price", Value: 1}}, "price")
	createIndex(ctx, contentItemCollection, bson.D{{Key: "start_date", Value: 1}, {Key: "end_date", Value: 1}}, "date_window")
	createIndex(ctx, contentItemCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at")
	createIndex(ctx, contentItemCollection, bson.D{{Key: "updated_at", Value: -1}}, "updated_at")
	createTextIndex(ctx, contentItemCollection, bson.D{
		{Key: "title", Value: "text"},
		{Key: "description", Value: "text"},
		{Key: "location", Value: "text"},
	}, "content_item_text_search")
	// 拼音索引
	createIndex(ctx, contentItemCollection, bson.D{{Key: "title_pinyin", Value: 1}}, "title_pinyin")
	createIndex(ctx, contentItemCollection, bson.D{{Key: "location_pinyin", Value: 1}}, "location_pinyin")
	// 复合索引优化
	createIndex(ctx, contentItemCollection, bson.D{
		{Key: "public", Value: 1},
		{Key: "kind", Value: 1}}, "public_kind_compound")
	createIndex(ctx, contentItemCollection, bson.D{
		{Key: "public", Value: 1},
		{Key: "categories", Value: 1}}, "public_categories_compound")
	createIndex(ctx, contentItemCollection, bson.D{
		{Key: "public", Value: 1},
		{Key: "created_at", Value: -1}}, "public_created_compound")

	// Engagement Collection
	engagementCollection := db.Collection(domain.CollectionDiscoveryEngagement)
	createIndex(ctx, engagementCollection, bson.D{{Key: "item_id", Value: 1}}, "item_id")
	createIndex(ctx, engagementCollection, bson.D{{Key: "trending_score", Value: -1}}, "trending_score")
	createIndex(ctx, engagementCollection, bson.D{{Key: "like_count", Value: -1}}, "like_count")
	createIndex(ctx, engagementCollection, bson.D{{Key: "view_count", Value: -1}}, "view_count")
	createIndex(ctx, engagementCollection, bson.D{{Key: "updated_at", Value: -1}}, "updated_at")

	// User Preferences Collection
	preferencesCollection := db.Collection(domain.CollectionDiscoveryUserPreferences)
	createIndex(ctx, preferencesCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id")

	// User Behavior Collection
	behaviorCollection := db.Collection(domain.CollectionDiscoveryUserBehavior)
	createIndex(ctx, behaviorCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id")

	// User Placement Collection
	placementCollection := db.Collection(domain.CollectionDiscoveryUserPlacement)
	createIndex(ctx, placementCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id")
	createIndex(ctx, placementCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "active", Value: 1}}, "user_active_compound")
	createIndex(ctx, placementCollection, bson.D{{Key: "expires_at", Value: 1}}, "expires_at")

	// User Collection
	userCollection := db.Collection(domain.CollectionUser)
	createIndex(ctx, userCollection, bson.D{{Key: "email", Value: 1}}, "email")
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetBackground(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		fmt.Printf("创建索引 '%s' 失败: %v\n", name, err)
	} else {
		fmt.Printf("索引 '%s' 创建成功\n", name)
	}
}

// 创建文本索引，避免重复创建
func createTextIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	// 先检查是否已存在同名索引
	specs, err := collection.Indexes().ListSpecifications(ctx)
	if err != nil {
		fmt.Printf("检查索引失败: %v\n", err)
		// 如果检查失败，仍然尝试创建索引
		indexModel := mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetName(name).SetBackground(true),
		}

		if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
			fmt.Printf("创建索引 '%s' 失败: %v\n", name, err)
		} else {
			fmt.Printf("索引 '%s' 创建成功\n", name)
		}
		return
	}

	// 遍历现有索引
	for _, spec := range specs {
		// 如果已存在同名索引，跳过创建
		if spec.Name == name {
			fmt.Printf("索引 '%s' 已存在，跳过创建\n", name)
			return
		}

		// 检查是否已存在文本索引（MongoDB每个集合只能有一个文本索引）
		isExistingTextIndex := false
		var specKeys bson.D
		if err := bson.Unmarshal(spec.KeysDocument, &specKeys); err == nil {
			for _, key := range specKeys {
				if key.Value == "text" {
					isExistingTextIndex = true
					break
				}
			}
		}

		// 检查是否要创建的也是文本索引
		isNewTextIndex := false
		for _, key := range keys {
			if key.Value == "text" {
				isNewTextIndex = true
				break
			}
		}

		// 如果已存在文本索引且要创建的也是文本索引，则跳过
		if isExistingTextIndex && isNewTextIndex {
			fmt.Printf("集合已存在文本索引 '%s'，跳过创建新的文本索引 '%s'\n", spec.Name, name)
			return
		}
	}

	// 创建索引
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetBackground(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		// 如果是因为已存在文本索引导致的错误，给出提示信息
		if strings.Contains(err.Error(), "language override unsupported") {
			fmt.Printf("集合已存在文本索引，无法创建新的文本索引 '%s'。请检查数据库中是否已存在其他文本索引。\n", name)
		} else {
			fmt.Printf("创建索引 '%s' 失败: %v\n", name, err)
		}
	} else {
		fmt.Printf("索引 '%s' 创建成功\n", name)
	}
}

func DropAllIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collections := []string{
		domain.CollectionDiscoveryContentItem,
		domain.CollectionDiscoveryEngagement,
		domain.CollectionDiscoveryUserPreferences,
		domain.CollectionDiscoveryUserBehavior,
		domain.CollectionDiscoveryUserPlacement,
	}

	for _, collName := range collections {
		collection := db.Collection(collName)
		if _, err := collection.Indexes().DropAll(ctx); err != nil {
			fmt.Printf("删除 '%s' 索引失败: %v\n", collName, err)
		} else {
			fmt.Printf("'%s' 索引删除成功\n", collName)
		}
	}
}
