package discovery_interface

import (
	"context"
)

// PlacementRepository 付费推广等级查询
type PlacementRepository interface {
	// GetBoosts 批量查询发布者的加成倍率；无有效推广的发布者不出现在结果中
	GetBoosts(ctx context.Context, ownerIDs []string) (map[string]float64, error)
}
