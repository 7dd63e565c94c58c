package content

import "time"

type BlogPost struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"coverImage"`
	Author     string    `json:"author"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
	// Rating is 0-5 in half steps.
	Rating    float64 `json:"rating"`
	Content   string  `json:"content"`
	Published bool    `json:"published"`
}

type Subscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// swagger:model NewBlogPost
type NewBlogPost struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	CoverImage string `json:"coverImage"`
	Author     string `json:"author"`
	Published  bool   `json:"published"`
	// CreatedAt is honored when set so fixtures keep their publication dates.
	CreatedAt time.Time `json:"createdAt"`
}

// swagger:model NewTestimonial
type NewTestimonial struct {
	Name      string  `json:"name" example:"Sarah J."`
	Location  string  `json:"location" example:"United States"`
	Avatar    string  `json:"avatar"`
	Rating    float64 `json:"rating" example:"5"`
	Content   string  `json:"content"`
	Published bool    `json:"published"`
}

// swagger:model NewContactMessage
type NewContactMessage struct {
	Name    string `json:"name" example:"Sarah J."`
	Email   string `json:"email" example:"sarah@example.com"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
