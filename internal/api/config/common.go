package config

// Feed 排序模式
const (
	// FeedOrderStance 按当前请求者投票表态列倒序（沿用线上行为）
	FeedOrderStance = "stance"
	// FeedOrderNewest 按发布时间倒序（修正模式）
	FeedOrderNewest = "newest"
)

// Config 配置主体
type Config struct {
	Server            ServerConfig      `mapstructure:"server"`
	DB                DBConfig          `mapstructure:"database"`
	Redis             RedisConfig       `mapstructure:"redis"`
	Logstash          LogstashConfig    `mapstructure:"logstash"`
	Pagination        PaginationConfig  `mapstructure:"pagination"`
	Feed              FeedConfig        `mapstructure:"feed"`
	I18n              I18nConfig        `mapstructure:"i18n"`
	Audit             AuditConfig       `mapstructure:"audit"`
	Kafka             KafkaConfig       `mapstructure:"kafka"`
	KafkaVoteConsumer KafkaVoteConsumer `mapstructure:"kafka_vote_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 远程日志上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// PaginationConfig 分页缺省值
type PaginationConfig struct {
	DefaultPage int `mapstructure:"default_page"`
	DefaultSize int `mapstructure:"default_size"`
	MaxSize     int `mapstructure:"max_size"`
}

// FeedConfig 信息流查询配置
type FeedConfig struct {
	Order string `mapstructure:"order"`
}

type I18nConfig struct {
	DefaultLocale string `mapstructure:"default_locale"`
}

// AuditConfig 审计日志配置，DenyFields 中的请求字段在落日志前会被脱敏
type AuditConfig struct {
	DenyFields []string `mapstructure:"deny_fields"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaVoteConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
