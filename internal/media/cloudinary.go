package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// CloudinaryClient uploads assets through the Cloudinary REST API using
// signed multipart requests. Credentials are fixed at construction time;
// one client serves the whole process.
type CloudinaryClient struct {
	cloudName string
	apiKey    string
	apiSecret string
	baseURL   string
	httpc     *http.Client
	now       func() time.Time
}

func NewCloudinaryClient(cloudName, apiKey, apiSecret string, timeout time.Duration) *CloudinaryClient {
	return &CloudinaryClient{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   defaultBaseURL,
		httpc:     &http.Client{Timeout: timeout},
		now:       time.Now,
	}
}

// SetBaseURL points the client at a different API endpoint. Used by tests
// that stub the host.
func (c *CloudinaryClient) SetBaseURL(u string) {
	c.baseURL = u
}

// Upload sends data as one signed multipart POST and blocks until the host
// answers. The returned result carries the asset reference the host assigned.
func (c *CloudinaryClient) Upload(ctx context.Context, data []byte, filename, folder string) (*UploadResult, error) {
	params := map[string]string{
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	if folder != "" {
		params["folder"] = folder
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("build upload request: %w", err)
		}
	}
	if err := w.WriteField("api_key", c.apiKey); err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	if err := w.WriteField("signature", c.sign(params)); err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	if filename == "" {
		filename = "file"
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/auto/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var result UploadResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("media host returned no public id")
	}
	return &result, nil
}

// Destroy removes a previously uploaded asset by its public ID.
func (c *CloudinaryClient) Destroy(ctx context.Context, publicID string) error {
	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}

	form := make(map[string]string, len(params)+2)
	for k, v := range params {
		form[k] = v
	}
	form["api_key"] = c.apiKey
	form["signature"] = c.sign(params)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range form {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("build destroy request: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("build destroy request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/video/destroy", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var result struct {
		Result string `json:"result"`
	}
	return c.do(req, &result)
}

func (c *CloudinaryClient) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("media host request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read media host response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("media host: %s (status %d)", apiErr.Error.Message, resp.StatusCode)
		}
		return fmt.Errorf("media host: unexpected status %d", resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}

// sign produces the request signature: sha1 over the sorted params joined as
// a query string, with the API secret appended.
func (c *CloudinaryClient) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb bytes.Buffer
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(params[k])
	}
	sb.WriteString(c.apiSecret)

	sum := sha1.Sum(sb.Bytes())
	return hex.EncodeToString(sum[:])
}
