package discovery_models

// FactorScores 五个归一化的因子分数，均位于 [0,1]
type FactorScores struct {
	Relevance  float64 `json:"relevance"`
	Popularity float64 `json:"popularity"`
	Freshness  float64 `json:"freshness"`
	Quality    float64 `json:"quality"`
	Proximity  float64 `json:"proximity"`
}

// CatalogEntry 目录查询结果：内容项与其互动指标的联结
// Metrics 在数据访问边界已归一化为单条记录，缺失时为 nil
type CatalogEntry struct {
	Item    ContentItem        `json:"item"`
	Metrics *EngagementMetrics `json:"metrics,omitempty"`
}

// ScoredItem 单次排序调用的临时结果，不持久化
// Score 为加权组合分数；若发布者持有付费推广等级，乘以等级加成后可能超过 1
type ScoredItem struct {
	Item    ContentItem            `json:"item"`
	Factors FactorScores           `json:"factors"`
	Score   float64                `json:"score"`
	Reasons []RecommendationReason `json:"reasons,omitempty"`
}

// FeedEntry 信息流分区中的一项
type FeedEntry struct {
	Item    ContentItem            `json:"item"`
	Score   float64                `json:"score"`
	Reasons []RecommendationReason `json:"reasons,omitempty"`
}

// SimilarEntry similar 分区的条目，额外携带派生的分类标签
type SimilarEntry struct {
	FeedEntry `bson:",inline"`
	Category  string `json:"category"`
}

// DiscoveryFeed 发现引擎输出：固定的七个命名分区
// personalRecommendations 最多 5 条，其余分区最多 10 条
// 分区之间相互独立，同一内容项可出现在多个分区，但单个分区内ID不重复
type DiscoveryFeed struct {
	PersonalRecommendations []FeedEntry    `json:"personalRecommendations"`
	Trending                []FeedEntry    `json:"trending"`
	ForYou                  []FeedEntry    `json:"forYou"`
	Nearby                  []FeedEntry    `json:"nearby"`
	FriendsLiked            []FeedEntry    `json:"friendsLiked"`
	Seasonal                []FeedEntry    `json:"seasonal"`
	Similar                 []SimilarEntry `json:"similar"`
}

// NewEmptyFeed 所有分区为空列表（而非 nil），空目录是合法的非错误结果
func NewEmptyFeed() *DiscoveryFeed {
	return &DiscoveryFeed{
		PersonalRecommendations: []FeedEntry{},
		Trending:                []FeedEntry{},
		ForYou:                  []FeedEntry{},
		Nearby:                  []FeedEntry{},
		FriendsLiked:            []FeedEntry{},
		Seasonal:                []FeedEntry{},
		Similar:                 []SimilarEntry{},
	}
}
