package services

import (
	"calremind/internal/app/deps"
	drl "calremind/internal/core/domain/rate_limiter"
	"calremind/internal/core/services"
	activateuser "calremind/internal/core/services/activate_user"
	addgroupmember "calremind/internal/core/services/add_group_member"
	"calremind/internal/core/services/auth"
	confirmtelegramlink "calremind/internal/core/services/confirm_telegram_link"
	createevent "calremind/internal/core/services/create_event"
	creategroup "calremind/internal/core/services/create_group"
	deleteevent "calremind/internal/core/services/delete_event"
	deletegroup "calremind/internal/core/services/delete_group"
	dispatchduereminders "calremind/internal/core/services/dispatch_due_reminders"
	getevent "calremind/internal/core/services/get_event"
	getuserbysessiontoken "calremind/internal/core/services/get_user_by_session_token"
	listeventreminders "calremind/internal/core/services/list_event_reminders"
	listgroupmembers "calremind/internal/core/services/list_group_members"
	listuserevents "calremind/internal/core/services/list_user_events"
	listusergroups "calremind/internal/core/services/list_user_groups"
	loginwithemail "calremind/internal/core/services/log_in_with_email"
	logout "calremind/internal/core/services/log_out"
	ratelimiting "calremind/internal/core/services/rate_limiting"
	resolverecipients "calremind/internal/core/services/resolve_recipients"
	signupwithemail "calremind/internal/core/services/sign_up_with_email"
	starttelegramlink "calremind/internal/core/services/start_telegram_link"
	updateevent "calremind/internal/core/services/update_event"
)

type Services struct {
	SignUpWithEmail       services.Service[signupwithemail.Input, signupwithemail.Result]
	ActivateUser          services.Service[activateuser.Input, activateuser.Result]
	LogInWithEmail        services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]

	StartTelegramLink   services.Service[starttelegramlink.Input, starttelegramlink.Result]
	ConfirmTelegramLink services.Service[confirmtelegramlink.Input, confirmtelegramlink.Result]

	CreateEvent        services.Service[createevent.Input, createevent.Result]
	UpdateEvent        services.Service[updateevent.Input, updateevent.Result]
	DeleteEvent        services.Service[deleteevent.Input, deleteevent.Result]
	GetEvent           services.Service[getevent.Input, getevent.Result]
	ListUserEvents     services.Service[listuserevents.Input, listuserevents.Result]
	ListEventReminders services.Service[listeventreminders.Input, listeventreminders.Result]

	CreateGroup      services.Service[creategroup.Input, creategroup.Result]
	DeleteGroup      services.Service[deletegroup.Input, deletegroup.Result]
	AddGroupMember   services.Service[addgroupmember.Input, addgroupmember.Result]
	ListGroupMembers services.Service[listgroupmembers.Input, listgroupmembers.Result]
	ListUserGroups   services.Service[listusergroups.Input, listusergroups.Result]

	ResolveRecipients    services.Service[resolverecipients.Input, resolverecipients.Result]
	DispatchDueReminders services.Service[dispatchduereminders.Input, dispatchduereminders.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.UserActivationTokenGenerator,
		deps.UserActivationTokenSender,
		deps.Now,
	)
	s.ActivateUser = activateuser.New(
		deps.Logger,
		deps.UserRepository,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.UserSessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)

	s.StartTelegramLink = auth.WithAuthentication(
		deps.SessionRepository,
		starttelegramlink.New(
			deps.Logger,
			deps.TelegramLinkRepository,
			deps.LinkCodeGenerator,
			deps.Now,
		),
	)
	s.ConfirmTelegramLink = confirmtelegramlink.New(
		deps.Logger,
		deps.UnitOfWork,
	)

	s.CreateEvent = auth.WithAuthentication(
		deps.SessionRepository,
		createevent.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.Now,
		),
	)
	s.UpdateEvent = auth.WithAuthentication(
		deps.SessionRepository,
		updateevent.New(
			deps.Logger,
			deps.UnitOfWork,
		),
	)
	s.DeleteEvent = auth.WithAuthentication(
		deps.SessionRepository,
		deleteevent.New(
			deps.Logger,
			deps.UnitOfWork,
		),
	)
	s.GetEvent = auth.WithAuthentication(
		deps.SessionRepository,
		getevent.New(
			deps.Logger,
			deps.EventRepository,
			deps.MembershipRepository,
		),
	)
	s.ListUserEvents = auth.WithAuthentication(
		deps.SessionRepository,
		listuserevents.New(
			deps.Logger,
			deps.EventRepository,
		),
	)
	s.ListEventReminders = auth.WithAuthentication(
		deps.SessionRepository,
		listeventreminders.New(
			deps.Logger,
			deps.EventRepository,
			deps.ReminderRepository,
		),
	)

	s.CreateGroup = auth.WithAuthentication(
		deps.SessionRepository,
		creategroup.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.Now,
		),
	)
	s.DeleteGroup = auth.WithAuthentication(
		deps.SessionRepository,
		deletegroup.New(
			deps.Logger,
			deps.UnitOfWork,
		),
	)
	s.AddGroupMember = auth.WithAuthentication(
		deps.SessionRepository,
		addgroupmember.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.Now,
		),
	)
	s.ListGroupMembers = auth.WithAuthentication(
		deps.SessionRepository,
		listgroupmembers.New(
			deps.Logger,
			deps.MembershipRepository,
		),
	)
	s.ListUserGroups = auth.WithAuthentication(
		deps.SessionRepository,
		listusergroups.New(
			deps.Logger,
			deps.GroupRepository,
		),
	)

	s.ResolveRecipients = resolverecipients.New(
		deps.Logger,
		deps.UserRepository,
		deps.MembershipRepository,
	)
	s.DispatchDueReminders = dispatchduereminders.New(
		deps.Logger,
		deps.UnitOfWork,
		s.ResolveRecipients,
		deps.TelegramBotMessageSender,
		deps.DeliveredPublisher,
		deps.Config.DeliveryTimeout,
		deps.Now,
	)

	return s
}
