package repository_discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
	"github.com/Super-Badmen-Viper/NineTrip/util/textkey"
)

type contentItemRepository struct {
	db         mongo.Database
	collection string
}

func NewContentItemRepository(db mongo.Database, collection string) discovery_interface.ContentItemRepository {
	return &contentItemRepository{
		db:         db,
		collection: collection,
	}
}

// catalogDocument 联结查询的解码载体
// metrics 在不同聚合路径下可能是数组（$lookup原始输出）或文档（$unwind后），
// 以 RawValue 接收后在Go侧归一化为单条记录
type catalogDocument struct {
	Item       discovery_models.ContentItem `bson:",inline"`
	MetricsRaw bson.RawValue                `bson:"metrics,omitempty"`
}

func (d *catalogDocument) toEntry() (discovery_models.CatalogEntry, error) {
	entry := discovery_models.CatalogEntry{Item: d.Item}

	switch d.MetricsRaw.Type {
	case bsontype.Array:
		values, err := d.MetricsRaw.Array().Values()
		if err != nil {
			return entry, fmt.Errorf("解析指标数组失败: %w", err)
		}
		if len(values) == 0 {
			return entry, nil
		}
		var m discovery_models.EngagementMetrics
		if err := values[0].Unmarshal(&m); err != nil {
			return entry, fmt.Errorf("解码指标文档失败: %w", err)
		}
		entry.Metrics = &m
	case bsontype.EmbeddedDocument:
		var m discovery_models.EngagementMetrics
		if err := d.MetricsRaw.Unmarshal(&m); err != nil {
			return entry, fmt.Errorf("解码指标文档失败: %w", err)
		}
		entry.Metrics = &m
	}

	return entry, nil
}

// metricsLookupStage 按内容项ID联结互动指标
// _id 为 ObjectID 而指标侧以十六进制字符串引用，联结前先做 $toString
func metricsLookupStage(engagementCollection string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from": engagementCollection,
		"let":  bson.M{"item_id": bson.M{"$toString": "$_id"}},
		"pipeline": bson.A{
			bson.M{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$item_id", "$$item_id"}}}},
		},
		"as": "metrics",
	}}}
}

func (r *contentItemRepository) GetFiltered(
	ctx context.Context,
	filter *discovery_models.DiscoveryFilter,
) ([]discovery_models.CatalogEntry, error) {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: coarseMatch(filter)}},
		metricsLookupStage(domain.CollectionDiscoveryEngagement),
	}

	cursor, err := r.db.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("目录聚合查询失败: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeEntries(ctx, cursor)
}

func (r *contentItemRepository) GetTrending(
	ctx context.Context,
	limit int,
) ([]discovery_models.CatalogEntry, error) {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.M{"public": true}}},
		metricsLookupStage(domain.CollectionDiscoveryEngagement),
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$metrics",
			"preserveNullAndEmptyArrays": false,
		}}},
		bson.D{{Key: "$match", Value: bson.M{"metrics.trending_score": bson.M{"$gt": 0}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "metrics.trending_score", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.db.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("趋势榜聚合查询失败: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeEntries(ctx, cursor)
}

func (r *contentItemRepository) Upsert(ctx context.Context, item *discovery_models.ContentItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()
	item.TitlePinyin = textkey.PinyinKeys(item.Title)
	item.LocationPinyin = textkey.PinyinKeys(item.Location)

	_, err := r.db.Collection(r.collection).UpdateOne(
		ctx,
		bson.M{"_id": item.ID},
		bson.M{"$set": item},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("保存内容项失败: %w", err)
	}
	return nil
}

func decodeEntries(ctx context.Context, cursor mongo.Cursor) ([]discovery_models.CatalogEntry, error) {
	entries := make([]discovery_models.CatalogEntry, 0)
	for cursor.Next(ctx) {
		var doc catalogDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("解码目录文档失败: %w", err)
		}
		entry, err := doc.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// coarseMatch 数据库端粗筛，权威过滤在组合器入口由 Matches 完成
// 子串匹配、日期相交等复杂条件留给Go侧，这里只裁掉明显不相关的文档
func coarseMatch(filter *discovery_models.DiscoveryFilter) bson.M {
	match := bson.M{"public": true}
	if filter == nil {
		return match
	}

	if len(filter.Types) > 0 {
		match["kind"] = bson.M{"$in": filter.Types}
	}
	if len(filter.Categories) > 0 {
		match["categories"] = bson.M{"$in": filter.Categories}
	}
	if filter.Location != "" {
		match["location"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexEscape(filter.Location),
			Options: "i",
		}}
	}
	if filter.SearchQuery != "" {
		match["$or"] = searchBranches(filter.SearchQuery)
	}
	return match
}

// searchBranches 检索词的数据库端候选分支：原文与折叠后的正则命中标题/描述/位置，
// 拼音检索键以折叠后的首音节匹配，使拉丁音节查询（如 "dong jing"）能召回中文内容
func searchBranches(query string) bson.A {
	raw := bson.M{"$regex": primitive.Regex{
		Pattern: regexEscape(query),
		Options: "i",
	}}
	branches := bson.A{
		bson.M{"title": raw},
		bson.M{"description": raw},
		bson.M{"location": raw},
	}

	folded := textkey.FoldKey(query)
	if folded != "" && folded != strings.ToLower(query) {
		foldedRegex := bson.M{"$regex": primitive.Regex{
			Pattern: regexEscape(folded),
			Options: "i",
		}}
		branches = append(branches,
			bson.M{"title": foldedRegex},
			bson.M{"description": foldedRegex},
			bson.M{"location": foldedRegex},
		)
	}

	if tokens := strings.Fields(folded); len(tokens) > 0 {
		syllable := bson.M{"$regex": primitive.Regex{
			Pattern: regexEscape(tokens[0]),
			Options: "i",
		}}
		branches = append(branches,
			bson.M{"title_pinyin": syllable},
			bson.M{"location_pinyin": syllable},
		)
	}
	return branches
}

func regexEscape(s string) string {
	special := `\.+*?()|[]{}^$`
	escaped := make([]rune, 0, len(s))
	for _, r := range s {
		for _, sp := range special {
			if r == sp {
				escaped = append(escaped, '\\')
				break
			}
		}
		escaped = append(escaped, r)
	}
	return string(escaped)
}
