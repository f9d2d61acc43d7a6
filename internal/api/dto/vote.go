package dto

// VoteDTO 投票请求；Believed 必填，指针类型以允许显式 null（登记但不表态）
type VoteDTO struct {
	Believed *bool `json:"believed"`
}
