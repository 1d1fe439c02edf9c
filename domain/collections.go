package domain

const (
	CollectionUser = "system_auth_users"
)

const (
	CollectionDiscoveryContentItem = "discovery_scene_content_item"
)
const (
	CollectionDiscoveryEngagement = "discovery_scene_engagement"
)
const (
	CollectionDiscoveryUserPreferences = "discovery_scene_user_preferences"
)
const (
	CollectionDiscoveryUserBehavior = "discovery_scene_user_behavior"
)
const (
	CollectionDiscoveryUserPlacement = "discovery_scene_user_placement"
)

const (
	CollectionDiscoveryPlacementConfigs = "discovery_app_configs_placement"
)
const (
	CollectionDiscoveryRankingConfigs = "discovery_app_configs_ranking"
)
