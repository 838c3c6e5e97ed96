package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"contract_pdf_app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/", nil)

	require.NoError(t, IndexHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "<title>業務委託書 作成</title>")
	assert.Contains(t, body, `id="contract-form"`)
	assert.Contains(t, body, `hx-post="/preview"`)
	assert.Contains(t, body, `hx-post="/export"`)
	// htmx disables the button only while an export is in flight
	assert.Contains(t, body, `hx-disabled-elt="this">`)
	assert.Contains(t, body, `id="preview-panel"`)
	for _, key := range models.FieldKeys {
		assert.Contains(t, body, `name="`+string(key)+`"`)
	}
	// boilerplate defaults are prefilled
	assert.Contains(t, body, "全額現金払")
}

func TestPreviewHandler(t *testing.T) {
	t.Run("renders posted values", func(t *testing.T) {
		fields := models.ContractFields{RecipientName: "山田 太郎", CreatedDate: "2024-04-01", CommissionFee: "50,000円"}
		_, c, rec := setupEcho(http.MethodPost, "/preview", formBody(fields))

		require.NoError(t, PreviewHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `id="preview-panel"`)
		assert.Contains(t, body, "山田 太郎")
		assert.Contains(t, body, "2024年4月1日")
		assert.Contains(t, body, "50,000円")
	})

	t.Run("blank form shows placeholders", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/preview", strings.NewReader(""))

		require.NoError(t, PreviewHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "____年__月__日")
	})

	t.Run("angle brackets are kept and escaped", func(t *testing.T) {
		fields := models.ContractFields{
			SpecialTerms: "別紙<Appendix A>参照",
			Purpose:      "a<b かつ b>c",
		}
		_, c, rec := setupEcho(http.MethodPost, "/preview", formBody(fields))

		require.NoError(t, PreviewHandler(c))
		body := rec.Body.String()
		assert.Contains(t, body, "別紙&lt;Appendix A&gt;参照")
		assert.Contains(t, body, "a&lt;b かつ b&gt;c")
		assert.NotContains(t, body, "<Appendix A>")
	})

	t.Run("markup is shown as text", func(t *testing.T) {
		fields := models.ContractFields{Purpose: `<img src=x onerror=alert(1)>PR投稿`}
		_, c, rec := setupEcho(http.MethodPost, "/preview", formBody(fields))

		require.NoError(t, PreviewHandler(c))
		body := rec.Body.String()
		assert.NotContains(t, body, "<img src=x")
		assert.Contains(t, body, "&lt;img src=x onerror=alert(1)&gt;PR投稿")
	})

	t.Run("identical input renders identically", func(t *testing.T) {
		fields := models.ContractFields{RecipientName: "山田 太郎", CreatedDate: "2024-04-01"}
		_, c1, rec1 := setupEcho(http.MethodPost, "/preview", formBody(fields))
		_, c2, rec2 := setupEcho(http.MethodPost, "/preview", formBody(fields))
		require.NoError(t, PreviewHandler(c1))
		require.NoError(t, PreviewHandler(c2))
		assert.Equal(t, rec1.Body.String(), rec2.Body.String())
	})
}

func TestExpandedPreviewHandler(t *testing.T) {
	t.Run("scales to the viewport", func(t *testing.T) {
		q := url.Values{"vw": {"1920"}, "vh": {"1080"}, "recipientName": {"山田 太郎"}}
		_, c, rec := setupEcho(http.MethodGet, "/preview/expanded?"+q.Encode(), nil)

		require.NoError(t, ExpandedPreviewHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `id="expanded-preview"`)
		assert.Contains(t, body, `id="contract-preview-expanded"`)
		assert.Contains(t, body, "transform: scale(")
		assert.Contains(t, body, "resize from:window")
		assert.Contains(t, body, "山田 太郎")
	})

	t.Run("rejects a missing viewport", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/preview/expanded", nil)
		err := ExpandedPreviewHandler(c)
		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestCapturePageHandler(t *testing.T) {
	fields := models.ContractFields{RecipientName: "山田 太郎", SpecialTerms: "別紙<Appendix A>参照"}
	_, c, rec := setupEcho(http.MethodPost, "/dev/capture", formBody(fields))

	require.NoError(t, CapturePageHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `id="contract-surface"`)
	assert.Contains(t, body, "capture-offscreen")
	assert.Contains(t, body, "別紙&lt;Appendix A&gt;参照")
	assert.NotContains(t, body, "<Appendix A>")
}

func TestNormalizeFieldValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "山田 太郎", "山田 太郎"},
		{"ampersand", "A & B", "A & B"},
		{"crlf", "一行目\r\n二行目", "一行目\n二行目"},
		{"tag-like text", "別紙<Appendix A>参照", "別紙<Appendix A>参照"},
		{"comparison", "a<b かつ b>c", "a<b かつ b>c"},
		{"less than amount", "報酬 <5万円", "報酬 <5万円"},
		{"markup", "<b>太字</b>", "<b>太字</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeFieldValue(tt.input))
		})
	}

	t.Run("length cap", func(t *testing.T) {
		got := normalizeFieldValue(strings.Repeat("あ", maxFieldLength+10))
		assert.Len(t, []rune(got), maxFieldLength)
	})
}
