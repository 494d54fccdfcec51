package forms_test

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helixcraftworks.com/helix-web/internal/forms"
)

func filledContact(t *testing.T, path string) *forms.Instance {
	t.Helper()
	inst := forms.NewInstance(forms.Contact(path))
	inst.Set("name", "Gene Gear")
	inst.Set("email", "gene@example.com")
	inst.Set("message", "Kitchen refresh, new cabinets.")
	return inst
}

func newBackend(t *testing.T, h http.HandlerFunc) *forms.Backend {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return forms.NewBackend(ts.URL, time.Second, nil)
}

func submitTo(t *testing.T, inst *forms.Instance, h http.HandlerFunc, opts ...forms.Option) (*forms.Controller, error) {
	t.Helper()
	backend := newBackend(t, h)
	opts = append([]forms.Option{forms.WithClient(backend), forms.WithEndpoint(backend.Endpoint())}, opts...)
	ctrl := forms.NewController(inst, opts...)
	return ctrl, ctrl.Submit(context.Background())
}

func TestSubmitSuccessStatuses(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusOK, http.StatusNoContent, http.StatusFound, http.StatusSeeOther} {
		code := code
		t.Run(http.StatusText(code), func(t *testing.T) {
			t.Parallel()

			var hits atomic.Int32
			inst := filledContact(t, "/")
			inst.Set("projectType", "Bathroom renovation")
			ctrl, err := submitTo(t, inst, func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				if code >= 300 {
					w.Header().Set("Location", "/thanks")
				}
				w.WriteHeader(code)
			})
			require.NoError(t, err)
			require.Equal(t, forms.StateSuccess, ctrl.State())
			require.True(t, ctrl.SubmitDisabled())
			require.Empty(t, ctrl.ErrorMessage())
			require.EqualValues(t, 1, hits.Load(), "redirects are reported, not followed")

			require.Equal(t, forms.DefaultProjectType, inst.Value("projectType"))
			require.Empty(t, inst.Value("name"))
			require.Equal(t, "Not sure yet", inst.Value("budget"))
		})
	}
}

func TestSubmitErrorStatus(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	inst := filledContact(t, "/")
	ctrl, err := submitTo(t, inst, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	var se *forms.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusInternalServerError, se.Code)
	require.Equal(t, forms.StateError, ctrl.State())
	require.Equal(t, "Something went wrong. Status 500. Please try again or email chris@helixcraftworks.com.", ctrl.ErrorMessage())
	require.False(t, ctrl.SubmitDisabled())
	require.Equal(t, "Gene Gear", inst.Value("name"), "values survive a failed submit")

	require.Error(t, ctrl.Submit(context.Background()), "resubmit is allowed after an error")
	require.EqualValues(t, 2, hits.Load())
}

func TestSubmitCareersErrorUsesCareersEmail(t *testing.T) {
	t.Parallel()

	inst := filledCareers(t)
	ctrl, err := submitTo(t, inst, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})
	require.Error(t, err)
	require.Equal(t, "Something went wrong. Status 422. Please try again or email careers@helixcraftworks.com.", ctrl.ErrorMessage())
}

func TestSubmitNetworkFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	endpoint := ts.URL
	ts.Close()

	ctrl := forms.NewController(filledContact(t, "/"),
		forms.WithClient(forms.NewBackend(endpoint, time.Second, nil)),
		forms.WithEndpoint(endpoint),
	)
	err := ctrl.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, forms.StateError, ctrl.State())
	require.Equal(t, forms.NetworkMessage, ctrl.ErrorMessage())
	require.False(t, ctrl.SubmitDisabled())
}

func TestSubmitDisabledAfterSuccess(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	inst := filledContact(t, "/")
	ctrl, err := submitTo(t, inst, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, err)

	inst.Set("name", "Again")
	inst.Set("email", "again@example.com")
	inst.Set("message", "second")
	require.ErrorIs(t, ctrl.Submit(context.Background()), forms.ErrSubmitDisabled)
	require.EqualValues(t, 1, hits.Load())
	require.Equal(t, forms.StateSuccess, ctrl.State())
}

func TestSubmitDisabledWhileSending(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	})
	unblock := sync.OnceFunc(func() { close(release) })
	t.Cleanup(unblock)
	ctrl := forms.NewController(filledContact(t, "/"), forms.WithClient(backend), forms.WithEndpoint(backend.Endpoint()))

	var wg sync.WaitGroup
	wg.Add(1)
	var first error
	go func() {
		defer wg.Done()
		first = ctrl.Submit(context.Background())
	}()

	<-entered
	require.Equal(t, forms.StateSending, ctrl.State())
	require.True(t, ctrl.SubmitDisabled())
	require.ErrorIs(t, ctrl.Submit(context.Background()), forms.ErrSubmitDisabled)

	unblock()
	wg.Wait()
	require.NoError(t, first)
	require.Equal(t, forms.StateSuccess, ctrl.State())
}

func TestSubmitObserverTransitions(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var seen []string
	observe := func(from, to forms.State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, from.String()+">"+to.String())
	}
	_, err := submitTo(t, filledContact(t, "/"), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, forms.WithObserver(observe))
	require.Error(t, err)
	require.Equal(t, []string{"idle>sending", "sending>error"}, seen)
}

func TestSubmitInvalidSkipsBackend(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	inst := forms.NewInstance(forms.Contact("/"))
	inst.Set("email", "not-an-email")
	ctrl, err := submitTo(t, inst, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})
	require.ErrorIs(t, err, forms.ErrInvalid)
	require.Equal(t, forms.StateIdle, ctrl.State())
	require.Zero(t, hits.Load())

	errs := ctrl.FieldErrors()
	require.Contains(t, errs, "name")
	require.Contains(t, errs, "email")
	require.Contains(t, errs, "message")
}

func TestSubmitHonoursContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	// registered after the server so the handler is released before ts.Close waits on it
	t.Cleanup(func() { close(release) })
	ctrl := forms.NewController(filledContact(t, "/"), forms.WithClient(backend), forms.WithEndpoint(backend.Endpoint()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := ctrl.Submit(ctx)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.Equal(t, forms.NetworkMessage, ctrl.ErrorMessage())
}

func TestURLEncodedPayload(t *testing.T) {
	t.Parallel()

	var (
		contentType, accept, raw string
	)
	inst := filledContact(t, "/")
	_, err := submitTo(t, inst, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		accept = r.Header.Get("Accept")
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, err)
	require.Equal(t, "application/x-www-form-urlencoded", contentType)
	require.Equal(t, "application/json", accept)

	require.Equal(t, []string{
		"form-name", "leadType", "bot-field", "name", "email", "location",
		"startTimeframe", "projectType", "budget", "message",
	}, keysOf(t, raw))

	vals, err := url.ParseQuery(raw)
	require.NoError(t, err)
	require.Equal(t, "contact", vals.Get("form-name"))
	require.Equal(t, "Helix Craftworks", vals.Get("leadType"))
	require.Equal(t, "Kitchen renovation", vals.Get("projectType"))
	require.Equal(t, "Not sure yet", vals.Get("budget"))
}

func TestURLEncodedServicesLead(t *testing.T) {
	t.Parallel()

	var raw string
	inst := filledContact(t, "/")
	inst.Set("projectType", "HVAC / airflow")
	inst.Set("budget", "Custom")
	inst.Set("customBudget", "$15,000")
	inst.Set("accessNotes", "Lockbox 1234")
	_, err := submitTo(t, inst, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, err)

	keys := keysOf(t, raw)
	require.Equal(t, []string{
		"form-name", "leadType", "bot-field", "name", "email", "location",
		"startTimeframe", "projectType", "assetType", "recurrence", "responseTier",
		"urgency", "accessNotes", "message",
	}, keys)
	vals, _ := url.ParseQuery(raw)
	require.Equal(t, "Helix Services", vals.Get("leadType"))
	require.Equal(t, "HVAC", vals.Get("assetType"))
	require.Equal(t, "Lockbox 1234", vals.Get("accessNotes"))
}

func TestURLEncodedCustomBudget(t *testing.T) {
	t.Parallel()

	inst := filledContact(t, "/")
	inst.Set("budget", "Custom")
	inst.Set("customBudget", "$15,000")

	payload := inst.Payload()
	require.Equal(t, "$15,000", payload.Get("customBudget"))
	keys := payload.Keys()
	require.Equal(t, "budget", keys[len(keys)-3])
	require.Equal(t, "customBudget", keys[len(keys)-2])

	inst.Set("budget", "$10k-25k")
	require.False(t, inst.Payload().Has("customBudget"))
}

func filledCareers(t *testing.T) *forms.Instance {
	t.Helper()
	inst := forms.NewInstance(forms.CareersApplication())
	inst.Set("name", "Jordan Ellis")
	inst.Set("email", "jordan@example.com")
	inst.Set("phone", "(555) 123-4567")
	inst.Set("location", "York, PA")
	return inst
}

type part struct {
	name, filename, body string
}

func readParts(t *testing.T, r *http.Request) []part {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)
	mr := multipart.NewReader(r.Body, params["boundary"])
	var parts []part
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		b, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, part{name: p.FormName(), filename: p.FileName(), body: string(b)})
	}
	return parts
}

func TestMultipartCarriesFileContent(t *testing.T) {
	t.Parallel()

	var parts []part
	inst := filledCareers(t)
	inst.Set("skills", "Framing", "Painting")
	inst.SetFile("resume", forms.BytesFile("jordan-ellis.pdf", "application/pdf", []byte("%PDF-1.4 resume")))
	ctrl, err := submitTo(t, inst, func(w http.ResponseWriter, r *http.Request) {
		parts = readParts(t, r)
		w.WriteHeader(http.StatusSeeOther)
	})
	require.NoError(t, err)
	require.Equal(t, forms.StateSuccess, ctrl.State())

	var names []string
	var skills []string
	var resume part
	for _, p := range parts {
		names = append(names, p.name)
		switch p.name {
		case "skills":
			skills = append(skills, p.body)
		case "resume":
			resume = p
		}
	}
	require.Equal(t, "form-name", names[0])
	require.Equal(t, []string{"Framing", "Painting"}, skills)
	require.Equal(t, "jordan-ellis.pdf", resume.filename)
	require.Equal(t, "%PDF-1.4 resume", resume.body)
	require.Nil(t, inst.File("resume"), "success resets the chosen file")
}

func TestMultipartEmptyFileInput(t *testing.T) {
	t.Parallel()

	var parts []part
	_, err := submitTo(t, filledCareers(t), func(w http.ResponseWriter, r *http.Request) {
		parts = readParts(t, r)
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, err)

	last := parts[len(parts)-1]
	require.Equal(t, "resume", last.name)
	require.Empty(t, last.filename)
	require.Empty(t, last.body)
}

func TestFakeBackendAccepts(t *testing.T) {
	t.Parallel()

	backend := forms.NewBackend("", 0, nil)
	require.True(t, backend.Fake())
	ctrl := forms.NewController(filledContact(t, "/"), forms.WithClient(backend), forms.WithEndpoint(backend.Endpoint()))
	require.NoError(t, ctrl.Submit(context.Background()))
	require.Equal(t, forms.StateSuccess, ctrl.State())
}

func keysOf(t *testing.T, raw string) []string {
	t.Helper()
	var keys []string
	for _, pair := range strings.Split(raw, "&") {
		k, _, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		require.NoError(t, err)
		keys = append(keys, key)
	}
	return keys
}
