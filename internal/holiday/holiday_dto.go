package holiday

type UpsertHolidayRequest struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

type HolidayEntryResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
