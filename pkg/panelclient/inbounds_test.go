package panelclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"xui-panel-client/models"
)

const inboundListResponse = `{"success":true,"msg":"","obj":[{
	"id":1,"up":100,"down":200,"total":0,"remark":"edge","enable":true,"expiryTime":0,
	"clientStats":[{"id":1,"inboundId":1,"enable":true,"email":"test","up":100,"down":200,"expiryTime":0,"total":0,"reset":0}],
	"listen":"","port":443,"protocol":"vless",
	"settings":"{\"clients\":[{\"id\":\"239708ef-487e-4945-829d-ad79a0ce067e\",\"email\":\"test\",\"enable\":true}],\"decryption\":\"none\",\"fallbacks\":[]}",
	"streamSettings":"{\"network\":\"tcp\",\"security\":\"reality\",\"realitySettings\":{\"serverNames\":[\"example.com\"],\"shortIds\":[\"ab12\"],\"settings\":{\"publicKey\":\"pk\",\"fingerprint\":\"chrome\"}}}",
	"tag":"inbound-443",
	"sniffing":"{\"enabled\":true,\"destOverride\":[\"http\",\"tls\"],\"metadataOnly\":false,\"routeOnly\":false}"
}]}`

func TestGetInboundList(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/panel/api/inbounds/list" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, inboundListResponse)
	}))

	inbounds, err := api.Inbound.GetList(context.Background())
	if err != nil {
		t.Fatalf("get list: %v", err)
	}
	if len(inbounds) != 1 {
		t.Fatalf("expected 1 inbound, got %d", len(inbounds))
	}

	in := inbounds[0]
	if in.ID != 1 || in.Port != 443 || in.Protocol != models.VLESS {
		t.Errorf("inbound header fields not decoded: %+v", in)
	}
	if len(in.Settings.Clients) != 1 || in.Settings.Clients[0].Email != "test" {
		t.Errorf("embedded settings not decoded: %+v", in.Settings)
	}
	if in.StreamSettings == nil || in.StreamSettings.Security != "reality" {
		t.Errorf("embedded stream settings not decoded: %+v", in.StreamSettings)
	}
	if !in.Sniffing.Enabled || len(in.Sniffing.DestOverride) != 2 {
		t.Errorf("embedded sniffing not decoded: %+v", in.Sniffing)
	}
	if len(in.ClientStats) != 1 || in.ClientStats[0].ID.String() != "1" {
		t.Errorf("client stats not decoded: %+v", in.ClientStats)
	}
}

func TestGetInboundByID(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/panel/api/inbounds/get/1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"success":true,"msg":"","obj":{"id":1,"port":443,"protocol":"vless",
			"settings":"{\"clients\":[]}","sniffing":"{\"enabled\":false}"}}`)
	}))

	in, err := api.Inbound.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if in.ID != 1 {
		t.Errorf("expected id 1, got %d", in.ID)
	}
}

func TestGetInboundByIDNotFound(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"msg":"","obj":null}`)
	}))

	_, err := api.Inbound.GetByID(context.Background(), 99)

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestAddInboundSendsWireForm(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/panel/api/inbounds/add" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var outer map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&outer); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		for _, key := range []string{"settings", "streamSettings", "sniffing"} {
			if field, ok := outer[key]; !ok || field[0] != '"' {
				t.Errorf("%s should be sent as a JSON-encoded string, got: %s", key, field)
			}
		}

		fmt.Fprint(w, `{"success":true}`)
	}))

	inbound := models.Inbound{
		Enable:   true,
		Port:     999,
		Protocol: models.VLESS,
		Settings: models.Settings{Decryption: "none"},
		StreamSettings: &models.StreamSettings{
			Network:     "tcp",
			Security:    "reality",
			TCPSettings: json.RawMessage(`{"acceptProxyProtocol":false,"header":{"type":"none"}}`),
		},
		Sniffing: models.Sniffing{Enabled: true},
	}

	if err := api.Inbound.Add(context.Background(), inbound); err != nil {
		t.Fatalf("add inbound: %v", err)
	}
}

func TestUpdateInbound(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/panel/api/inbounds/update/7" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"success":true}`)
	}))

	inbound := models.Inbound{ID: 7, Enable: true, Port: 999, Protocol: models.VLESS}
	if err := api.Inbound.Update(context.Background(), 7, inbound); err != nil {
		t.Fatalf("update inbound: %v", err)
	}
}

func TestDeleteInbound(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/panel/api/inbounds/del/1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"success":true}`)
	}))

	if err := api.Inbound.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete inbound: %v", err)
	}
}

func TestDeleteInboundFailed(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"msg":"Delete Failed: record not found"}`)
	}))

	err := api.Inbound.Delete(context.Background(), 1)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Msg != "Delete Failed: record not found" {
		t.Errorf("panel message not carried: %q", apiErr.Msg)
	}
}

func TestResetPassthroughs(t *testing.T) {
	var gotPaths []string

	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		fmt.Fprint(w, `{"success":true}`)
	}))

	ctx := context.Background()
	if err := api.Inbound.ResetAllStats(ctx); err != nil {
		t.Fatalf("reset all stats: %v", err)
	}
	if err := api.Inbound.ResetAllClientStats(ctx, 4); err != nil {
		t.Fatalf("reset all client stats: %v", err)
	}

	want := []string{
		"/panel/api/inbounds/resetAllTraffics",
		"/panel/api/inbounds/resetAllClientTraffics/4",
	}
	for i, path := range want {
		if i >= len(gotPaths) || gotPaths[i] != path {
			t.Errorf("expected request %d to %s, got %v", i, path, gotPaths)
		}
	}
}
