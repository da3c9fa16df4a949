package endpoints

// Endpoint identifies a logical bucket of extracted records. Category and Slug
// are derived from Path by the server.
type Endpoint struct {
	ID       int64  `json:"id"`
	Path     string `json:"path"`
	Category string `json:"category"`
	Slug     string `json:"slug"`
}

// TreeEndpoint is the short endpoint form returned by the tree listing.
type TreeEndpoint struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
	Slug string `json:"slug"`
}

// TreeCategory groups endpoints under a category name.
type TreeCategory struct {
	Name      string         `json:"name"`
	Endpoints []TreeEndpoint `json:"endpoints"`
}

type treeResponse struct {
	Categories []TreeCategory `json:"categories"`
}

// EndpointMetadata splits an endpoint's items into previously seen and new.
type EndpointMetadata struct {
	OldMetadata []MetadataItem `json:"oldMetadata"`
	NewMetadata []MetadataItem `json:"newMetadata"`
}

// EndpointDetails is the full detail view of one endpoint.
type EndpointDetails struct {
	Endpoint   Endpoint         `json:"endpoint"`
	Metadata   EndpointMetadata `json:"metadata"`
	TotalItems int              `json:"totalItems"`
}

// Item is a record submitted when creating or appending to an endpoint.
type Item struct {
	Data map[string]interface{} `json:"data"`
}

// CreateEndpointOptions holds optional arguments to CreateEndpoint. A nil
// Items sends no items field; an empty non-nil slice sends "items": [].
type CreateEndpointOptions struct {
	Items []Item
}

type createEndpointRequest struct {
	Path  string  `json:"path"`
	Items *[]Item `json:"items,omitempty"`
}

type appendItemsRequest struct {
	Items []Item `json:"items"`
}

// CreateEndpointResponse is returned by CreateEndpoint.
type CreateEndpointResponse struct {
	Endpoint   Endpoint `json:"endpoint"`
	ItemsAdded int      `json:"itemsAdded"`
}

// AppendItemsResponse is returned by AppendItems.
type AppendItemsResponse struct {
	Endpoint   Endpoint `json:"endpoint"`
	ItemsAdded int      `json:"itemsAdded"`
	TotalItems int      `json:"totalItems"`
}

// FileDeleteResult is the outcome of deleting one stored file. A failed
// deletion is reported here, not returned as an error.
type FileDeleteResult struct {
	Key     string `json:"key"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DeleteEndpointResponse is the manifest returned by DeleteEndpoint.
type DeleteEndpointResponse struct {
	Success      bool               `json:"success"`
	DeletedFiles int                `json:"deletedFiles"`
	FileResults  []FileDeleteResult `json:"fileResults"`
}

// DeleteItemResult describes the deleted item.
type DeleteItemResult struct {
	ItemID      string `json:"itemId"`
	HadFile     bool   `json:"hadFile"`
	FileDeleted bool   `json:"fileDeleted"`
}

// DeleteItemResponse is returned by DeleteItem. EndpointDeleted is set when
// removing the last item also removed the endpoint.
type DeleteItemResponse struct {
	Success         bool             `json:"success"`
	Deleted         DeleteItemResult `json:"deleted"`
	EndpointDeleted bool             `json:"endpointDeleted"`
	RemainingItems  int              `json:"remainingItems"`
}

// FileURLResponse is a short-lived presigned URL for a stored file.
type FileURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

// ScanOptions holds optional arguments to ScanText and ScanFiles.
type ScanOptions struct {
	// TargetEndpoint appends results to an existing endpoint path.
	TargetEndpoint string
}

// ScanResponse is returned by ScanText and ScanFiles.
type ScanResponse struct {
	Success      bool     `json:"success"`
	Endpoint     Endpoint `json:"endpoint"`
	EntriesAdded int      `json:"entriesAdded"`
	TotalEntries int      `json:"totalEntries"`
}

// BillingStats is a usage and quota snapshot for the authenticated account.
type BillingStats struct {
	Tier              string `json:"tier"`
	ParsesThisMonth   int    `json:"parsesThisMonth"`
	MonthlyParseLimit int    `json:"monthlyParseLimit"`
	StorageUsed       int64  `json:"storageUsed"`
	StorageLimit      string `json:"storageLimit"`
	Status            string `json:"status"`
	CurrentPeriodEnd  string `json:"currentPeriodEnd"`
}
