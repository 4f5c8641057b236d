// Package main implements a mock MWS endpoint for local development.
// Order calls are answered from a generated catalog so paging and
// incremental sync can be exercised end to end. Every other action is
// served from the XML fixtures the client tests use.
package main

import (
	"crypto/md5" //nolint:gosec // Content-MD5 is part of the wire protocol
	"encoding/base64"
	"encoding/xml"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

const (
	xmlns      = "https://mws.amazonservices.com/Orders/2013-09-01"
	quotaMax   = 200
	maxPerPage = 100
)

// fixtures maps the fixture-backed actions to files in the fixture dir.
var fixtures = map[string]string{
	"GetReport":                       "report_body.txt",
	"GetReportList":                   "report_list.xml",
	"GetReportListByNextToken":        "report_list.xml",
	"GetReportCount":                  "report_count.xml",
	"GetReportRequestList":            "report_request_list.xml",
	"GetReportRequestListByNextToken": "report_request_list_next.xml",
	"RequestReport":                   "request_report.xml",
	"UpdateReportAcknowledgements":    "update_report_ack.xml",
	"ManageReportSchedule":            "manage_report_schedule.xml",
	"GetReportScheduleList":           "report_schedule_list.xml",
	"SubmitFeed":                      "submit_feed.xml",
	"GetFeedSubmissionList":           "feed_submission_list.xml",
	"GetFeedSubmissionResult":         "feed_result.xml",
	"GetMatchingProductForId":         "get_matching_product.xml",
	"ListMatchingProducts":            "list_matching_products.xml",
	"GetCompetitivePricingForSKU":     "competitive_pricing.xml",
	"GetMyPriceForSKU":                "my_price.xml",
	"GetProductCategoriesForSKU":      "product_categories.xml",
	"ListInventorySupply":             "inventory_supply.xml",
	"ListInboundShipments":            "inbound_shipments.xml",
	"ListInboundShipmentItems":        "inbound_shipment_items.xml",
	"GetTransportContent":             "transport_content.xml",
	"PutTransportContent":             "transport_result.xml",
	"EstimateTransportRequest":        "transport_result.xml",
	"ConfirmTransportRequest":         "transport_result.xml",
	"VoidTransportRequest":            "transport_result.xml",
	"GetPackageLabels":                "package_labels.xml",
	"CreateFulfillmentOrder":          "create_fulfillment_order.xml",
	"GetFulfillmentOrder":             "fulfillment_order.xml",
	"ListAllFulfillmentOrders":        "fulfillment_orders.xml",
	"GetFulfillmentPreview":           "fulfillment_preview.xml",
	"ListFinancialEventGroups":        "financial_event_groups.xml",
	"ListFinancialEvents":             "financial_events.xml",
	"ListMarketplaceParticipations":   "marketplace_participations.xml",
}

// checksummed actions carry a Content-MD5 header over the body.
var checksummed = map[string]bool{
	"GetReport":               true,
	"GetFeedSubmissionResult": true,
}

type responseMetadata struct {
	RequestID string `xml:"RequestId"`
}

type response struct {
	XMLName          xml.Name
	Xmlns            string           `xml:"xmlns,attr"`
	Result           any              `xml:",omitempty"`
	ResponseMetadata responseMetadata `xml:"ResponseMetadata"`
}

type errorBody struct {
	XMLName xml.Name `xml:"ErrorResponse"`
	Xmlns   string   `xml:"xmlns,attr"`
	Error   struct {
		Type    string `xml:"Type"`
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
	} `xml:"Error"`
	RequestID string `xml:"RequestId"`
}

type server struct {
	cat           *catalog
	fixtureDir    string
	pageSize      int
	secret        string
	throttleEvery int64
	requests      atomic.Int64
	log           *slog.Logger
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureDir := flag.String("fixtures", "pkg/mws/testdata", "directory holding XML fixtures")
	orders := flag.Int("orders", 25, "number of generated orders")
	pageSize := flag.Int("page-size", 10, "orders per ListOrders page")
	seed := flag.Uint64("seed", 42, "seed for generated data")
	secret := flag.String("secret", "", "verify request signatures with this secret key")
	throttleEvery := flag.Int64("throttle-every", 0, "throttle every Nth request (0 disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := &server{
		cat:           newCatalog(*seed, *orders, time.Now()),
		fixtureDir:    *fixtureDir,
		pageSize:      *pageSize,
		secret:        *secret,
		throttleEvery: *throttleEvery,
		log:           logger,
	}
	logger.Info("generated orders", "count", len(srv.cat.orders), "seed", *seed)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock MWS server", "addr", addr)

	hs := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, srv),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := hs.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	n := s.requests.Add(1)

	w.Header().Set("x-mws-request-id", requestID)
	w.Header().Set("x-mws-timestamp", mws.FormatTime(time.Now()))
	w.Header().Set("x-mws-quota-max", strconv.Itoa(quotaMax))
	w.Header().Set("x-mws-quota-remaining", strconv.FormatInt(quotaMax-n%quotaMax, 10))
	resets := time.Now().Truncate(time.Hour).Add(time.Hour)
	w.Header().Set("x-mws-quota-resetsOn", mws.FormatTime(resets))

	if r.Method != http.MethodPost {
		s.fail(w, http.StatusMethodNotAllowed, "InvalidParameterValue", "POST required", requestID)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.fail(w, http.StatusBadRequest, "InvalidParameterValue", err.Error(), requestID)
		return
	}

	action := r.Form.Get("Action")
	switch {
	case r.Form.Get("AWSAccessKeyId") == "":
		s.fail(w, http.StatusForbidden, "InvalidAccessKeyId", "AWSAccessKeyId is required", requestID)
		return
	case r.Form.Get("Signature") == "":
		s.fail(w, http.StatusBadRequest, "MissingParameter", "Signature is required", requestID)
		return
	case !s.signatureValid(r):
		s.fail(w, http.StatusForbidden, "SignatureDoesNotMatch", "signature mismatch", requestID)
		return
	case s.throttleEvery > 0 && n%s.throttleEvery == 0:
		s.fail(w, http.StatusServiceUnavailable, "RequestThrottled", "Request is throttled", requestID)
		return
	}

	s.log.Info("action", "action", action, "request_id", requestID)

	switch action {
	case "ListOrders":
		s.listOrders(w, r, action, requestID)
	case "ListOrdersByNextToken":
		q, err := parseOrderToken(r.Form.Get("NextToken"))
		if err != nil {
			s.fail(w, http.StatusBadRequest, "InvalidParameterValue", err.Error(), requestID)
			return
		}
		s.write(w, action, requestID, s.cat.ordersResult(action, q, s.pageSize))
	case "GetOrder":
		s.getOrder(w, r, action, requestID)
	case "ListOrderItems":
		id := r.Form.Get("AmazonOrderId")
		items, ok := s.cat.items[id]
		if !ok {
			s.fail(w, http.StatusBadRequest, "InvalidParameterValue", "unknown order "+id, requestID)
			return
		}
		s.write(w, action, requestID, orderItemsResult{
			XMLName:       xml.Name{Local: action + "Result"},
			AmazonOrderID: id,
			Items:         items,
		})
	case "GetServiceStatus":
		s.write(w, action, requestID, serviceStatusResult{
			XMLName:   xml.Name{Local: action + "Result"},
			Status:    "GREEN",
			Timestamp: time.Now().UTC().Truncate(time.Second),
		})
	default:
		s.fixture(w, action, requestID)
	}
}

func (s *server) signatureValid(r *http.Request) bool {
	if s.secret == "" {
		return true
	}
	return mws.Sign(r.Method, r.Host, r.URL.Path, r.Form, s.secret) == r.Form.Get("Signature")
}

func (s *server) listOrders(w http.ResponseWriter, r *http.Request, action, requestID string) {
	q := orderQuery{}
	raw := r.Form.Get("LastUpdatedAfter")
	if created := r.Form.Get("CreatedAfter"); created != "" {
		q.byCreated, raw = true, created
	}
	after, err := time.Parse(mws.TimeFormat, raw)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "InvalidParameterValue",
			"CreatedAfter or LastUpdatedAfter is required", requestID)
		return
	}
	q.after = after

	size := s.pageSize
	if v, err := strconv.Atoi(r.Form.Get("MaxResultsPerPage")); err == nil && v > 0 {
		size = min(v, maxPerPage)
	}
	s.write(w, action, requestID, s.cat.ordersResult(action, q, size))
}

func (s *server) getOrder(w http.ResponseWriter, r *http.Request, action, requestID string) {
	res := ordersResult{XMLName: xml.Name{Local: action + "Result"}, Orders: []xmlOrder{}}
	for i := 1; ; i++ {
		id := r.Form.Get("AmazonOrderId.Id." + strconv.Itoa(i))
		if id == "" {
			break
		}
		if o, ok := s.cat.order(id); ok {
			res.Orders = append(res.Orders, o)
		}
	}
	s.write(w, action, requestID, res)
}

func (s *server) fixture(w http.ResponseWriter, action, requestID string) {
	name, ok := fixtures[action]
	if !ok {
		name, ok = fixtures[strings.TrimSuffix(action, "ByNextToken")]
	}
	if !ok {
		s.fail(w, http.StatusBadRequest, "InvalidParameterValue",
			"unsupported action "+action, requestID)
		return
	}

	path := filepath.Join(s.fixtureDir, name)
	body, err := os.ReadFile(path) //nolint:gosec // fixture dir from trusted CLI flag
	if err != nil {
		s.log.Error("reading fixture", "action", action, "file", name, "error", err)
		s.fail(w, http.StatusInternalServerError, "InternalError", "fixture unavailable", requestID)
		return
	}

	contentType := "text/xml"
	if !strings.HasSuffix(name, ".xml") {
		contentType = "text/plain"
	}
	if checksummed[action] {
		sum := md5.Sum(body) //nolint:gosec // Content-MD5 is part of the wire protocol
		w.Header().Set("Content-MD5", base64.StdEncoding.EncodeToString(sum[:]))
	}
	w.Header().Set("Content-Type", contentType)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write(body)
}

func (s *server) write(w http.ResponseWriter, action, requestID string, result any) {
	out, err := xml.Marshal(response{
		XMLName:          xml.Name{Local: action + "Response"},
		Xmlns:            xmlns,
		Result:           result,
		ResponseMetadata: responseMetadata{RequestID: requestID},
	})
	if err != nil {
		s.log.Error("encoding response", "action", action, "error", err)
		s.fail(w, http.StatusInternalServerError, "InternalError", "encoding failed", requestID)
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write([]byte(xml.Header))
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write(out)
}

func (s *server) fail(w http.ResponseWriter, status int, code, msg, requestID string) {
	body := errorBody{Xmlns: "https://mws.amazonservices.com/", RequestID: requestID}
	body.Error.Type = "Sender"
	if status >= http.StatusInternalServerError {
		body.Error.Type = "Receiver"
	}
	body.Error.Code = code
	body.Error.Message = msg

	s.log.Warn("error response", "status", status, "code", code, "message", msg)

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	xml.NewEncoder(w).Encode(body)
}
