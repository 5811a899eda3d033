package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/config"
	"github.com/avolkovs/bookmarket-cli/internal/client/credstore"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
	"github.com/avolkovs/bookmarket-cli/internal/client/services"
	"github.com/avolkovs/bookmarket-cli/internal/client/session"
	"github.com/avolkovs/bookmarket-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Manager

	catalog       services.CatalogService
	inventory     services.InventoryService
	orders        services.OrderService
	favorites     services.FavoriteService
	notifications services.NotificationService
	support       services.SupportService
	admin         services.AdminService

	apiClient api.Client
	reader    *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	db, err := credstore.InitDatabase(ctx, c.CredentialsDBPath)
	if err != nil {
		log.Error(ctx, "error initializing credentials database", "error", err)
		return nil, err
	}
	store := credstore.NewSQLiteRepository(db)

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	sess := session.NewManager(store, apiClient, log)

	return &App{
		config:        c,
		log:           log,
		session:       sess,
		catalog:       services.NewCatalogService(apiClient),
		inventory:     services.NewInventoryService(apiClient),
		orders:        services.NewOrderService(apiClient),
		favorites:     services.NewFavoriteService(apiClient),
		notifications: services.NewNotificationService(apiClient),
		support:       services.NewSupportService(apiClient),
		admin:         services.NewAdminService(apiClient),
		apiClient:     apiClient,
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()
	a.Root(ctx)
}

// commands builds the full REPL command table. Auth and Role are consulted
// by the gate on every dispatch, so the table itself is static.
func (a *App) commands() []command {
	return []command{
		// Public.
		{Name: "browse", Help: "browse [search] — list approved books", Run: a.Browse},
		{Name: "book", Help: "book <id> — show one listing", Run: a.ShowBook},
		{Name: "categories", Help: "categories — list catalog categories", Run: a.Categories},
		{Name: "login", Help: "login — authenticate", Run: a.Login},
		{Name: "register", Help: "register — create an account", Run: a.Register},
		{Name: "resetpw", Help: "resetpw — request a password reset code", Run: a.RequestPasswordReset},
		{Name: "confirmpw", Help: "confirmpw — confirm a password reset", Run: a.ConfirmPasswordReset},

		// Any authenticated user.
		{Name: "whoami", Help: "whoami — show the current user", Auth: true, Run: a.Whoami},
		{Name: "profile", Help: "profile — show profile details", Auth: true, Run: a.ShowProfile},
		{Name: "editprofile", Help: "editprofile — update profile fields", Auth: true, Run: a.EditProfile},
		{Name: "history", Help: "history — purchases and sales", Auth: true, Run: a.History},
		{Name: "favorites", Help: "favorites — list saved books", Auth: true, Run: a.ListFavorites},
		{Name: "fav", Help: "fav <book id> — save a book", Auth: true, Run: a.AddFavorite},
		{Name: "unfav", Help: "unfav <favorite id> — remove a saved book", Auth: true, Run: a.RemoveFavorite},
		{Name: "buy", Help: "buy <book id> — purchase a book", Auth: true, Run: a.Buy},
		{Name: "pay", Help: "pay <order id> — pay a pending order", Auth: true, Run: a.Pay},
		{Name: "orders", Help: "orders — list my orders", Auth: true, Run: a.ListOrders},
		{Name: "invoices", Help: "invoices — list my invoices", Auth: true, Run: a.Invoices},
		{Name: "transactions", Help: "transactions — list my transactions", Auth: true, Run: a.Transactions},
		{Name: "notifications", Help: "notifications — list notifications", Auth: true, Run: a.Notifications},
		{Name: "read", Help: "read <id> — mark a notification read", Auth: true, Run: a.MarkNotificationRead},
		{Name: "tickets", Help: "tickets — list my support tickets", Auth: true, Run: a.ListTickets},
		{Name: "ticket", Help: "ticket — open a support ticket", Auth: true, Run: a.OpenTicket},
		{Name: "logout", Help: "logout — end the session", Auth: true, Run: a.Logout},

		// Sellers (admin and staff pass too).
		{Name: "mybooks", Help: "mybooks — list my inventory", Auth: true, Role: models.RoleSeller, Run: a.MyBooks},
		{Name: "sell", Help: "sell — add a new listing", Auth: true, Role: models.RoleSeller, Run: a.Sell},
		{Name: "editbook", Help: "editbook <id> — edit a listing", Auth: true, Role: models.RoleSeller, Run: a.EditBook},
		{Name: "rmbook", Help: "rmbook <id> — delete a listing", Auth: true, Role: models.RoleSeller, Run: a.RemoveBook},

		// Admins.
		{Name: "users", Help: "users [search] — list users", Auth: true, Role: models.RoleAdmin, Run: a.Users},
		{Name: "setrole", Help: "setrole <user id> <role> — change a user's role", Auth: true, Role: models.RoleAdmin, Run: a.SetRole},
		{Name: "approve", Help: "approve <book id> — approve a listing", Auth: true, Role: models.RoleAdmin, Run: a.Approve},
		{Name: "reject", Help: "reject <book id> — reject a listing", Auth: true, Role: models.RoleAdmin, Run: a.Reject},
		{Name: "addcat", Help: "addcat <name> — add a category", Auth: true, Role: models.RoleAdmin, Run: a.AddCategory},
		{Name: "renamecat", Help: "renamecat <id> <name> — rename a category", Auth: true, Role: models.RoleAdmin, Run: a.RenameCategory},
		{Name: "rmcat", Help: "rmcat <id> — delete a category", Auth: true, Role: models.RoleAdmin, Run: a.RemoveCategory},
		{Name: "reply", Help: "reply <ticket id> — answer a support ticket", Auth: true, Role: models.RoleAdmin, Run: a.ReplyTicket},
		{Name: "report", Help: "report — show the admin dashboard report", Auth: true, Role: models.RoleAdmin, Run: a.Report},
	}
}
