package model

type TranslateRequestBody struct {
	Notation string `json:"notation"`
}

type TranslateResponse struct {
	Events []Event `json:"events"`
	Tail   uint32  `json:"tail"`
}

type PartSummary struct {
	Name          string  `json:"name"`
	Notes         int     `json:"notes"`
	SoundingTicks uint64  `json:"sounding_ticks"`
	TotalTicks    uint64  `json:"total_ticks"`
	Bars          float64 `json:"bars"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
