package http

// Request bodies for the JSON API. Field names follow the snake_case used
// throughout the read models.

type signupUserRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Phone    string   `json:"phone"`
	Address  string   `json:"address"`
	HomeLat  *float64 `json:"home_lat"`
	HomeLng  *float64 `json:"home_lng"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Username *string  `json:"username"`
	Phone    *string  `json:"phone"`
	Address  *string  `json:"address"`
	HomeLat  *float64 `json:"home_lat"`
	HomeLng  *float64 `json:"home_lng"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type orderLineRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

type createOrderRequest struct {
	Items           []orderLineRequest `json:"items"`
	DeliveryAddress string             `json:"delivery_address"`
	DestLat         float64            `json:"dest_lat"`
	DestLng         float64            `json:"dest_lng"`
	Phone           string             `json:"phone"`
	Notes           string             `json:"notes"`
}

type signupAgentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone"`
	Vehicle       string `json:"vehicle"`
	LicenseNumber string `json:"license_number"`
}

type updateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type approveAgentRequest struct {
	Approved bool `json:"approved"`
}

type assignAgentRequest struct {
	AgentID string `json:"agent_id"`
}

type productRequest struct {
	Name          string   `json:"name"`
	ImageURL      string   `json:"image_url"`
	UnitType      string   `json:"unit_type"`
	PricePerKg    *float64 `json:"price_per_kg"`
	PricePerPiece *float64 `json:"price_per_piece"`
	StockKg       float64  `json:"stock_kg"`
	StockPieces   int      `json:"stock_pieces"`
	Category      string   `json:"category"`
	IsAvailable   bool     `json:"is_available"`
}

type productUpdateRequest struct {
	Name          *string  `json:"name"`
	ImageURL      *string  `json:"image_url"`
	UnitType      *string  `json:"unit_type"`
	PricePerKg    *float64 `json:"price_per_kg"`
	PricePerPiece *float64 `json:"price_per_piece"`
	StockKg       *float64 `json:"stock_kg"`
	StockPieces   *int     `json:"stock_pieces"`
	Category      *string  `json:"category"`
	IsAvailable   *bool    `json:"is_available"`
}

type deliverySettingsRequest struct {
	BaseFee      float64 `json:"base_fee"`
	PerKmRate    float64 `json:"per_km_rate"`
	PerMeterRate float64 `json:"per_meter_rate"`
}

type loginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
}

type messageResponse struct {
	Message string `json:"message"`
}
