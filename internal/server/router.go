package server

import (
	"github.com/gin-gonic/gin"

	"github.com/thereayou/studybud/internal/database"
	"github.com/thereayou/studybud/internal/handlers"
	"github.com/thereayou/studybud/internal/middleware"
	"github.com/thereayou/studybud/internal/session"
	"github.com/thereayou/studybud/pkg/auth"
)

// Routes wires every endpoint. All write routes sit behind RequireLogin;
// everything else is readable anonymously.
func Routes(r *gin.Engine, jwtMgr *auth.JWTManager, sessions session.Store, db *database.Database, uploadDir string) {
	authH := handlers.NewAuthHandler(db, jwtMgr, sessions)
	roomH := handlers.NewRoomHandler(db, sessions)
	messageH := handlers.NewMessageHandler(db, sessions)
	userH := handlers.NewUserHandler(db, sessions, uploadDir)
	apiH := handlers.NewAPIHandler(db)

	r.Use(middleware.CurrentUser(jwtMgr, sessions))

	r.GET("/login", authH.LoginPage)
	r.POST("/login", authH.Login)
	r.GET("/register", authH.RegisterPage)
	r.POST("/register", authH.Register)
	r.GET("/logout", authH.Logout)

	r.GET("/", roomH.Home)
	r.GET("/topics", userH.Topics)
	r.GET("/activity", userH.Activity)
	r.GET("/room/:id", roomH.Room)
	r.GET("/profile/:id", userH.Profile)

	authed := r.Group("", middleware.RequireLogin())
	{
		authed.POST("/room/:id", roomH.PostMessage)
		authed.GET("/create-room", roomH.CreateRoomPage)
		authed.POST("/create-room", roomH.CreateRoom)
		authed.GET("/update-room/:id", roomH.UpdateRoomPage)
		authed.POST("/update-room/:id", roomH.UpdateRoom)
		authed.GET("/delete-room/:id", roomH.DeleteRoomPage)
		authed.POST("/delete-room/:id", roomH.DeleteRoom)
		authed.GET("/delete-message/:id", messageH.DeleteMessagePage)
		authed.POST("/delete-message/:id", messageH.DeleteMessage)
		authed.GET("/update-user", userH.EditProfilePage)
		authed.POST("/update-user", userH.EditProfile)
	}

	api := r.Group("/api")
	{
		api.GET("", apiH.Routes)
		api.GET("/rooms", apiH.GetRooms)
		api.GET("/rooms/:id", apiH.GetRoom)
		api.GET("/users", apiH.GetUsers)
	}
}
