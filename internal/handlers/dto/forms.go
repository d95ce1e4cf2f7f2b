package dto

type RoomForm struct {
	Topic       string `form:"topic" binding:"required"`
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

type MessageForm struct {
	Body string `form:"body" binding:"required"`
}

type UserForm struct {
	Name     string `form:"name" binding:"required"`
	Username string `form:"username" binding:"required,min=3,max=50"`
	Email    string `form:"email" binding:"required,email"`
	Bio      string `form:"bio"`
}
