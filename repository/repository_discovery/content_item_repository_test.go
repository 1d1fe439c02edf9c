package repository_discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

func TestCoarseMatchDefaultsToPublicOnly(t *testing.T) {
	match := coarseMatch(nil)
	assert.Equal(t, bson.M{"public": true}, match)

	match = coarseMatch(&discovery_models.DiscoveryFilter{})
	assert.Equal(t, bson.M{"public": true}, match)
}

func TestCoarseMatchTypesAndCategories(t *testing.T) {
	match := coarseMatch(&discovery_models.DiscoveryFilter{
		Types:      []string{"deal"},
		Categories: []string{"美食"},
	})

	assert.Equal(t, bson.M{"$in": []string{"deal"}}, match["kind"])
	assert.Equal(t, bson.M{"$in": []string{"美食"}}, match["categories"])
}

func TestCoarseMatchSearchQueryPinyinBranch(t *testing.T) {
	match := coarseMatch(&discovery_models.DiscoveryFilter{SearchQuery: "dong jing"})

	branches, ok := match["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, branches, 5)

	// 前三个分支：原文正则命中标题/描述/位置
	title := branches[0].(bson.M)["title"].(bson.M)
	assert.Equal(t, "dong jing", title["$regex"].(primitive.Regex).Pattern)

	// 拼音分支只取折叠后的首音节，避免裁掉连续音节存储的文档
	pinyinBranch := branches[3].(bson.M)["title_pinyin"].(bson.M)
	assert.Equal(t, "dong", pinyinBranch["$regex"].(primitive.Regex).Pattern)
}

func TestCoarseMatchSearchQueryWidthFolded(t *testing.T) {
	match := coarseMatch(&discovery_models.DiscoveryFilter{SearchQuery: "ＴＯＫＹＯ"})

	branches, ok := match["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, branches, 8)

	// 折叠分支把全角查询归一化为半角
	folded := branches[3].(bson.M)["title"].(bson.M)
	assert.Equal(t, "tokyo", folded["$regex"].(primitive.Regex).Pattern)
}

func TestRegexEscape(t *testing.T) {
	assert.Equal(t, `a\.b\*c`, regexEscape("a.b*c"))
	assert.Equal(t, `东京`, regexEscape("东京"))
	assert.Equal(t, `\(deal\)\$`, regexEscape("(deal)$"))
}
