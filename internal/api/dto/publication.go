package dto

// PublicationCreateDTO 创建内容请求
type PublicationCreateDTO struct {
	URL string `json:"url" binding:"required,url,max=2048"`
}

// PublicationDTO 内容公开投影；Believed 为 nil 表示请求者未表态
type PublicationDTO struct {
	ID               uint64 `json:"id"`
	URL              string `json:"url"`
	Platform         string `json:"platform"`
	BelievedCount    int    `json:"believed_count"`
	DisbelievedCount int    `json:"disbelieved_count"`
	CreatedAt        string `json:"created_at"`
	Believed         *bool  `json:"believed"`
}

// PublicationSelectionDTO 分页的内容列表
type PublicationSelectionDTO struct {
	Items []*PublicationDTO `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
	Pages int               `json:"pages"`
}
