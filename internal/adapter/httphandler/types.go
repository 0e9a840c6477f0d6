package httphandler

type (
	Product struct {
		ID             string            `json:"id"`
		Title          string            `json:"title"`
		Description    string            `json:"description"`
		Brand          string            `json:"brand"`
		Category       string            `json:"category"`
		Price          int64             `json:"price"`
		PreviousPrice  int64             `json:"previous_price,omitempty"`
		Stock          int               `json:"stock"`
		Rating         float64           `json:"rating"`
		Tags           []string          `json:"tags,omitempty"`
		Specifications map[string]string `json:"specifications,omitempty"`
		Images         []string          `json:"images,omitempty"`
	}

	CatalogResponse struct {
		Items     []Product `json:"items"`
		Total     int       `json:"total"`
		Page      int       `json:"page"`
		PageCount int       `json:"page_count"`
		PageSize  int       `json:"page_size"`
	}

	Review struct {
		Author string `json:"author"`
		Text   string `json:"text"`
		Rating int    `json:"rating"`
	}

	ProductDetailResponse struct {
		Product  Product  `json:"product"`
		Gallery  []string `json:"gallery"`
		Discount bool     `json:"discount"`
		Reviews  []Review `json:"reviews"`
	}

	CartLine struct {
		ProductID string `json:"product_id"`
		Title     string `json:"title"`
		UnitPrice int64  `json:"unit_price"`
		Quantity  int    `json:"quantity"`
		LineTotal int64  `json:"line_total"`
		Image     string `json:"image"`
	}

	CartResponse struct {
		Lines    []CartLine `json:"lines"`
		Items    int        `json:"items"`
		Subtotal int64      `json:"subtotal"`
		Shipping int64      `json:"shipping"`
		Total    int64      `json:"total"`
	}

	CartItemRequest struct {
		ProductID string `json:"product_id" validate:"required"`
		Delta     int    `json:"delta" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	RegisterRequest struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required"`
		PasswordConfirm string `json:"password_confirm" validate:"required"`
	}

	SessionResponse struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	CheckoutResponse struct {
		Message string       `json:"message"`
		Cart    CartResponse `json:"cart"`
	}

	ActivityResponse struct {
		UserEmail string `json:"user_email"`
		Events    int64  `json:"events"`
	}
)
