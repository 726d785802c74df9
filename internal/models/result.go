package models

// Write results keep the field names the web client already reads
// (insertedId, modifiedCount, deletedCount...).

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// SalesReport is the common part of every statistics response.
type SalesReport struct {
	TotalBookings int             `json:"totalBookings"`
	TotalPrice    float64         `json:"totalPrice"`
	ChartData     [][]interface{} `json:"chartData"`
}
