package session

import (
	"context"
	"sync"
	"time"

	"github.com/abimaelfv/titulacion-cli/apiclient"
	"github.com/abimaelfv/titulacion-cli/credential"
	"github.com/abimaelfv/titulacion-cli/internal/validate"
	"github.com/abimaelfv/titulacion-cli/notify"
	"github.com/abimaelfv/titulacion-cli/routes"
	"github.com/rs/zerolog"
)

const defaultRedirectDelay = 500 * time.Millisecond

// Navigator is the slice of navigation the store needs: pushing a route
// after a successful operation.
type Navigator interface {
	Navigate(route string) error
}

// Store owns the single Session of the client. All mutations go through
// its operations; collaborators hold the store and read through Current.
//
// Failures never escape an operation: they are reduced to a notification
// and the session is left unchanged. The epoch guards against an in-flight
// response landing after a logout.
type Store struct {
	mu      sync.Mutex
	current Session
	epoch   uint64

	api      *apiclient.Client
	storage  Storage
	notifier notify.Notifier
	nav      Navigator
	decoder  credential.Decoder

	redirectDelay time.Duration
	sleep         func(time.Duration)
	log           zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithRedirectDelay overrides the delay between the success notification
// and the navigation that follows it.
func WithRedirectDelay(d time.Duration) Option {
	return func(s *Store) { s.redirectDelay = d }
}

// WithSleep replaces the delay function, for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Store) { s.sleep = sleep }
}

// WithDecoder replaces the credential decoder, for tests.
func WithDecoder(d credential.Decoder) Option {
	return func(s *Store) { s.decoder = d }
}

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a Store. The session starts empty; call Hydrate to restore a
// persisted one.
func New(api *apiclient.Client, storage Storage, notifier notify.Notifier, nav Navigator, opts ...Option) *Store {
	s := &Store{
		api:           api,
		storage:       storage,
		notifier:      notifier,
		nav:           nav,
		decoder:       credential.DecoderFunc(credential.Decode),
		redirectDelay: defaultRedirectDelay,
		sleep:         time.Sleep,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate restores the persisted session, if any. Called once at startup.
func (s *Store) Hydrate() error {
	persisted, found, err := s.storage.Load()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	s.mu.Lock()
	s.current = persisted
	s.mu.Unlock()
	s.log.Debug().Str("email", persisted.Email).Msg("session rehydrated")
	return nil
}

// Current returns a copy of the session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token returns the current credential token, empty when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Token
}

// Loading reports whether a session operation is in flight. Screens use it
// to disable duplicate submissions; the store itself does not deduplicate.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Loading
}

// Login authenticates with the institutional email and password. All
// outcomes surface through the notification channel; the caller observes
// failure only through the unchanged session.
func (s *Store) Login(ctx context.Context, email, password string) {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := validate.InstitutionalEmail(email); err != nil {
		s.notifier.Toast(loginDomainMessage(), loginErrorTitle, notify.Error)
		return
	}

	epoch := s.currentEpoch()
	creds, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.notifyFailure(err, loginErrorTitle)
		return
	}

	next := Session{
		ID:       creds.ID,
		Token:    creds.Token,
		FullName: creds.Nombre,
		Email:    creds.Correo,
		Role:     creds.Rol,
		IsJury:   creds.EsJurado,
	}
	if !s.commit(epoch, next) {
		return
	}

	s.notifier.Toast("", "Bienvenido de nuevo "+creds.Nombre, notify.Success)
	s.sleep(s.redirectDelay)
	s.navigate(creds.Rol.Home())
}

// GoogleLogin exchanges a third-party credential for a session. The
// credential is decoded locally only to pre-check the hosted domain and to
// fill profile fields; the backend does the actual verification.
func (s *Store) GoogleLogin(ctx context.Context, rawCredential string) {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.decoder.Decode(rawCredential)
	if err != nil {
		s.notifier.Toast(err.Error(), loginErrorTitle, notify.Error)
		return
	}
	if !validate.HostedDomain(user.HostedDomain) {
		s.notifier.Toast(loginDomainMessage(), loginErrorTitle, notify.Error)
		return
	}

	epoch := s.currentEpoch()
	creds, err := s.api.LoginGoogle(ctx, user.Email)
	if err != nil {
		s.notifyFailure(err, loginErrorTitle)
		return
	}

	next := Session{
		ID:       creds.ID,
		Token:    creds.Token,
		FullName: user.Name,
		Email:    creds.Correo,
		Role:     creds.Rol,
		Image:    user.Picture,
		IsJury:   creds.EsJurado,
	}
	if !s.commit(epoch, next) {
		return
	}

	s.notifier.Toast("Has iniciado sesión exitosamente", "Bienvenido de nuevo "+user.Name, notify.Success)
	s.sleep(s.redirectDelay)
	s.navigate(creds.Rol.Home())
}

// Register creates an account. Registration always lands on the student
// home, the role the backend assigns to every new account.
func (s *Store) Register(ctx context.Context, email, password string) {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := validate.InstitutionalEmail(email); err != nil {
		s.notifier.Toast(registerDomainMessage(), registerErrorTitle, notify.Error)
		return
	}

	epoch := s.currentEpoch()
	creds, err := s.api.Register(ctx, email, password)
	if err != nil {
		s.notifyFailure(err, registerErrorTitle)
		return
	}

	next := Session{
		ID:       creds.ID,
		Token:    creds.Token,
		FullName: creds.Nombre,
		Email:    creds.Correo,
		Role:     creds.Rol,
		IsJury:   creds.EsJurado,
	}
	if !s.commit(epoch, next) {
		return
	}

	s.notifier.Toast("Te has registrado exitosamente", "Bienvenido "+creds.Nombre, notify.Success)
	s.sleep(s.redirectDelay)
	s.navigate("estudiante")
}

// GoogleRegister registers through a third-party credential. The account
// password is derived deterministically from the email so the registration
// can be repeated from any device.
func (s *Store) GoogleRegister(ctx context.Context, rawCredential string) {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.decoder.Decode(rawCredential)
	if err != nil {
		s.notifier.Toast(err.Error(), registerErrorTitle, notify.Error)
		return
	}
	if !validate.HostedDomain(user.HostedDomain) {
		s.notifier.Toast(registerDomainMessage(), registerErrorTitle, notify.Error)
		return
	}

	epoch := s.currentEpoch()
	creds, err := s.api.RegisterGoogle(ctx, user.Email, credential.DerivePassword(user.Email))
	if err != nil {
		s.notifyFailure(err, registerErrorTitle)
		return
	}

	next := Session{
		ID:       creds.ID,
		Token:    creds.Token,
		FullName: user.Name,
		Email:    creds.Correo,
		Role:     creds.Rol,
		Image:    user.Picture,
		IsJury:   creds.EsJurado,
	}
	if !s.commit(epoch, next) {
		return
	}

	s.notifier.Toast("Te has registrado exitosamente", "Bienvenido "+user.Name, notify.Success)
	s.sleep(s.redirectDelay)
	s.navigate("estudiante")
}

// Logout resets every session field, clears the persisted copy and bumps
// the epoch so any in-flight response is discarded. Synchronous, cannot
// fail, idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = Session{}
	s.epoch++
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("clearing persisted session")
	}
	s.navigate(routes.Login)
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.current.Loading = v
	s.mu.Unlock()
}

func (s *Store) currentEpoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// commit installs the session obtained at epoch, unless a logout advanced
// the epoch while the request was in flight. Persistence happens before
// any further side effect, so a navigation that races the write still sees
// consistent state.
func (s *Store) commit(epoch uint64, next Session) bool {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		s.log.Info().Msg("discarding stale session response after logout")
		return false
	}
	next.Loading = s.current.Loading
	s.current = next
	s.mu.Unlock()

	if err := s.storage.Save(next); err != nil {
		s.log.Warn().Err(err).Msg("persisting session")
	}
	return true
}

func (s *Store) navigate(route string) {
	if err := s.nav.Navigate(route); err != nil {
		s.log.Warn().Err(err).Str("route", route).Msg("navigation failed")
	}
}

func (s *Store) notifyFailure(err error, title string) {
	if remote, ok := apiclient.AsRemote(err); ok {
		s.notifier.Toast(apiclient.JoinMessages(remote.Messages), title, notify.Error)
		return
	}
	s.notifier.Toast(err.Error(), title, notify.Error)
}

const (
	loginErrorTitle    = "Error al iniciar sesión"
	registerErrorTitle = "Error al registrarse"
)

func loginDomainMessage() string {
	return "Ingresa con una cuenta institucional @" + validate.Domain()
}

func registerDomainMessage() string {
	return "Registrate con una cuenta institucional @" + validate.Domain()
}
