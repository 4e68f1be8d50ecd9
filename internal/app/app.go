package app

import (
	"fmt"
	"net/http"

	"calremind/internal/app/deps"
	"calremind/internal/app/services"
	"calremind/internal/http/handlers/auth"
	stream "calremind/internal/http/handlers/deliveries/stream"
	createevent "calremind/internal/http/handlers/events/create_event"
	deleteevent "calremind/internal/http/handlers/events/delete_event"
	getevent "calremind/internal/http/handlers/events/get_event"
	listeventreminders "calremind/internal/http/handlers/events/list_event_reminders"
	listuserevents "calremind/internal/http/handlers/events/list_user_events"
	updateevent "calremind/internal/http/handlers/events/update_event"
	addgroupmember "calremind/internal/http/handlers/groups/add_group_member"
	creategroup "calremind/internal/http/handlers/groups/create_group"
	deletegroup "calremind/internal/http/handlers/groups/delete_group"
	listgroupmembers "calremind/internal/http/handlers/groups/list_group_members"
	listusergroups "calremind/internal/http/handlers/groups/list_user_groups"
	telegram "calremind/internal/http/handlers/telegram"
	activateuser "calremind/internal/http/handlers/users/activate_user"
	loginwithemail "calremind/internal/http/handlers/users/log_in_with_email"
	logout "calremind/internal/http/handlers/users/log_out"
	me "calremind/internal/http/handlers/users/me"
	signupwithemail "calremind/internal/http/handlers/users/sign_up_with_email"
	starttelegramlink "calremind/internal/http/handlers/users/start_telegram_link"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/activate/{activationToken}", activateuser.New(s.ActivateUser))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	profileRouter.Method(http.MethodPost, "/telegram/link", starttelegramlink.New(s.StartTelegramLink))

	eventsRouter := chi.NewRouter()
	eventsRouter.Use(auth.SetAuthTokenToContext)
	eventsRouter.Method(http.MethodPost, "/", createevent.New(s.CreateEvent))
	eventsRouter.Method(http.MethodGet, "/", listuserevents.New(s.ListUserEvents))
	eventsRouter.Method(http.MethodGet, "/{eventID:[0-9]+}", getevent.New(s.GetEvent))
	eventsRouter.Method(http.MethodPut, "/{eventID:[0-9]+}", updateevent.New(s.UpdateEvent))
	eventsRouter.Method(http.MethodDelete, "/{eventID:[0-9]+}", deleteevent.New(s.DeleteEvent))
	eventsRouter.Method(http.MethodGet, "/{eventID:[0-9]+}/reminders", listeventreminders.New(s.ListEventReminders))

	groupsRouter := chi.NewRouter()
	groupsRouter.Use(auth.SetAuthTokenToContext)
	groupsRouter.Method(http.MethodPost, "/", creategroup.New(s.CreateGroup))
	groupsRouter.Method(http.MethodGet, "/", listusergroups.New(s.ListUserGroups))
	groupsRouter.Method(http.MethodDelete, "/{groupID:[0-9]+}", deletegroup.New(s.DeleteGroup))
	groupsRouter.Method(http.MethodPost, "/{groupID:[0-9]+}/members", addgroupmember.New(s.AddGroupMember))
	groupsRouter.Method(http.MethodGet, "/{groupID:[0-9]+}/members", listgroupmembers.New(s.ListGroupMembers))

	telegramRouter := chi.NewRouter()
	telegramRouter.Method(
		http.MethodPost,
		fmt.Sprintf("/updates/%s", deps.Config.TelegramURLSecret),
		telegram.New(deps.Logger, deps.TelegramBotMessageSender, s.ConfirmTelegramLink),
	)

	deliveriesRouter := chi.NewRouter()
	deliveriesRouter.Use(auth.SetAuthTokenToContext)
	streamHandler := stream.New(deps.Logger, deps.SseServer, s.GetUserBySessionToken)
	deliveriesRouter.Method(http.MethodGet, "/stream", streamHandler)
	deliveriesRouter.Method(http.MethodGet, "/stream/{sessionToken}", streamHandler)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/events", eventsRouter)
	router.Mount("/groups", groupsRouter)
	router.Mount("/telegram", telegramRouter)
	router.Mount("/deliveries", deliveriesRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
