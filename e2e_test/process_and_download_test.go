//go:build e2e
// +build e2e

package e2e_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jsphweid/midisolo/cmd"
	"github.com/jsphweid/midisolo/midi"
	"github.com/jsphweid/midisolo/model"
	"github.com/jsphweid/midisolo/sample"
	"github.com/jsphweid/midisolo/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

var srv *httptest.Server

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	srv = httptest.NewServer(cmd.NewRouter(store.NewResults(time.Minute), nil))

	exitVal := m.Run()

	srv.Close()
	os.Exit(exitVal)
}

func upload(t *testing.T, filename string, data []byte, reduction string) *http.Response {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	mw.WriteField("reduction", reduction)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		panic(err.Error())
	}
	fw.Write(data)
	mw.Close()

	resp, err := http.Post(srv.URL+"/process", mw.FormDataContentType(), body)
	if err != nil {
		panic(err.Error())
	}
	return resp
}

func TestDemoE2E(t *testing.T) {
	input, err := midi.Encode(sample.Demo())
	if err != nil {
		panic(err.Error())
	}

	resp := upload(t, "demo.mid", input, "20")
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var processed model.ProcessResponse
	err = json.NewDecoder(resp.Body).Decode(&processed)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal([]string{"demo_Drums.mid", "demo_track-1.mid", "demo_Lead.mid", "demo_All.mid"}, processed.FileNames)

	dl, err := http.Get(srv.URL + processed.DownloadURL)
	if err != nil {
		panic(err.Error())
	}
	defer dl.Body.Close()
	assert.Equal(200, dl.StatusCode)

	data, _ := io.ReadAll(dl.Body)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NoError(err)

	entries := make(map[string][]byte)
	for _, f := range zr.File {
		rc, _ := f.Open()
		entries[f.Name], _ = io.ReadAll(rc)
		rc.Close()
	}
	assert.Equal(input, entries["demo_All.mid"])

	drums, err := midi.Decode(entries["demo_Drums.mid"])
	assert.NoError(err)
	original, _ := midi.Decode(input)
	assert.Equal(original.Tracks[0], drums.Tracks[0])
	assert.NotEqual(original.Tracks[1], drums.Tracks[1])
	assert.NotEqual(original.Tracks[2], drums.Tracks[2])
}

func TestMalformedE2E(t *testing.T) {
	resp := upload(t, "broken.mid", []byte("MThd\x00\x00"), "20")
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)
}
