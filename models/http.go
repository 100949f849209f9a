package models

// AuthRequest is the body of the authentication call.
type AuthRequest struct {
	InitData string `json:"initData"`
}

// FarmRequest is the body of farm start and claim calls. For start TaskID is
// [FarmTaskID]; for claim it is the id of the cycle being claimed.
type FarmRequest struct {
	UserID string `json:"userId"`
	TaskID string `json:"taskId"`
}

// QuestRequest is the body of quest start and claim calls.
type QuestRequest struct {
	UserID  string `json:"userId"`
	QuestID string `json:"questId"`
	Project string `json:"project"`
}
