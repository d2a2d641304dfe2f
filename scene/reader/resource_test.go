package reader

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := newResource(thisFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.IsRemote() {
		t.Fatal("expected local file resource to not be remote")
	}
	if res.Key() != thisFile {
		t.Fatalf("expected resource key to be %s; got %s", thisFile, res.Key())
	}
}

func TestHttpResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	thisDir := filepath.Dir(thisFile)

	server := httptest.NewServer(http.FileServer(http.Dir(thisDir)))
	defer server.Close()

	fetchUrl := server.URL + "/" + filepath.Base(thisFile)
	res, err := newResource(fetchUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if !res.IsRemote() {
		t.Fatal("expected http resource to be remote")
	}

	fetchUrl = server.URL + "/file-not-found.xml"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = newResource(fetchUrl, nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestRelativeResources(t *testing.T) {
	serverHits := 0
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHits++
		if r.URL.Path == "/scenes/main.xml" || r.URL.Path == "/scenes/parts.xml" {
			w.Write([]byte("OK"))
		} else {
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	res1, err := newResource(server.URL+"/scenes/main.xml", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res1.Close()
	res2, err := newResource("parts.xml", res1)
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Close()

	if serverHits != 2 {
		t.Fatalf("expected server to receive 2 requests; got %d", serverHits)
	}

	// Local relative paths resolve against the parent directory.
	dir := t.TempDir()
	if err = os.WriteFile(filepath.Join(dir, "a.xml"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err = os.WriteFile(filepath.Join(dir, "b.xml"), []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	local1, err := newResource(filepath.Join(dir, "a.xml"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer local1.Close()
	local2, err := newResource("b.xml", local1)
	if err != nil {
		t.Fatal(err)
	}
	defer local2.Close()

	if exp := filepath.Join(dir, "b.xml"); local2.Key() != exp {
		t.Fatalf("expected relative resource key %s; got %s", exp, local2.Key())
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "resource: unsupported scheme 'gopher'"
	_, err := newResource("gopher://digging.xml", nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestResourceConnectionRefusedError(t *testing.T) {
	_, err := newResource("http://localhost:12345/foo.xml", nil)
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected to get 'connection refused error'; got %v", err)
	}
}
