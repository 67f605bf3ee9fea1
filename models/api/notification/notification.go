package notificationapimodels

type NotificationView struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type ListFilter struct {
	Limit      int  `query:"limit" json:"limit"` // 0 = all
	UnreadOnly bool `query:"unread_only" json:"unread_only"`
}

func (r ListFilter) Validate() error {
	return nil
}
