package routes

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"shiptrack/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	logger *zap.Logger,
	userHandler *handlers.UserHandler,
	catalogHandler *handlers.CatalogHandler,
	shipmentHandler *handlers.ShipmentHandler,
	eventHandler *handlers.EventHandler,
	riskHandler *handlers.RiskHandler,
	exceptionHandler *handlers.ExceptionHandler,
	reportHandler *handlers.ReportHandler,
) {
	handle := func(pattern string, h http.HandlerFunc) {
		http.Handle(pattern, withCORS(handlers.RecoverWrapper(logger, h)))
	}

	// User routes
	handle("/signup", userHandler.Signup)
	handle("/login", userHandler.Login)

	// Reference catalogs
	handle("/locations", catalogHandler.Locations)
	handle("/carriers", catalogHandler.Carriers)
	handle("/vessels", catalogHandler.Vessels)
	handle("/containers", catalogHandler.Containers)
	handle("/customers", catalogHandler.Customers)

	// Container event history
	handle("/containers/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/containers/")
		containerNo, ok := strings.CutSuffix(rest, "/events")
		if !ok || containerNo == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		eventHandler.GetContainerEvents(w, r, containerNo)
	})

	// Event ingestion (trusted write path)
	handle("/events", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		eventHandler.IngestEvent(w, r)
	})

	// Shipment routes
	handle("/shipments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			shipmentHandler.CreateShipment(w, r)
		case http.MethodGet:
			shipmentHandler.GetShipments(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Shipment sub-resources by reference number
	handle("/shipments/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/shipments/")
		ref, sub, _ := strings.Cut(rest, "/")
		if ref == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch sub {
		case "":
			shipmentHandler.GetShipmentByReference(w, r, ref)
		case "status":
			shipmentHandler.GetStatus(w, r, ref)
		case "progress":
			shipmentHandler.GetProgress(w, r, ref)
		case "events":
			shipmentHandler.GetEvents(w, r, ref)
		case "legs":
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			shipmentHandler.AddLeg(w, r, ref)
		case "containers":
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			shipmentHandler.AttachContainer(w, r, ref)
		case "exceptions":
			shipmentHandler.GetExceptions(w, r, ref)
		case "customs":
			shipmentHandler.GetCustoms(w, r, ref)
		case "report":
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			reportHandler.BuildReport(w, r, ref)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	// Risk classification (materialized; may lag by one refresh cycle)
	handle("/risk", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		riskHandler.GetRiskList(w, r)
	})
	handle("/risk/refresh", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		riskHandler.RefreshRisk(w, r)
	})

	// Exceptions and customs
	handle("/exceptions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			exceptionHandler.OpenException(w, r)
		case http.MethodGet:
			exceptionHandler.GetOpenExceptions(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/exceptions/close", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		exceptionHandler.CloseException(w, r)
	})
	handle("/customs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		exceptionHandler.UpsertCustoms(w, r)
	})
}
