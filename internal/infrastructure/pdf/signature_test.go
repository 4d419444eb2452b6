package pdf_test

import (
	"bytes"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-forms/internal/domain"
	"github.com/jhoicas/asset-forms/internal/infrastructure/pdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestSignatureFieldInjector hace el viaje de ida y vuelta: genera un
// documento real, inyecta el campo de firma y lo vuelve a abrir con pdfcpu
// para verificar que el AcroForm declara exactamente un campo /Sig con el
// nombre esperado, anclado a la última página, sin alterar el paginado.
// ──────────────────────────────────────────────────────────────────────────────

// renderedReceipt documento de prueba ya paginado.
func renderedReceipt(t *testing.T, rows int) []byte {
	t.Helper()
	out, err := pdf.NewReceiptRenderer(testLayout).Render(receiptHeader(), receiptRows(rows))
	require.NoError(t, err)
	return out
}

// readBack abre el documento con validación relajada.
func readBack(t *testing.T, b []byte) *model.Context {
	t.Helper()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadContext(bytes.NewReader(b), conf)
	require.NoError(t, err)
	require.NoError(t, ctx.EnsurePageCount())
	return ctx
}

// signatureFields diccionarios de campos /Sig declarados en el AcroForm.
func signatureFields(t *testing.T, ctx *model.Context) []types.Dict {
	t.Helper()

	root, err := ctx.Catalog()
	require.NoError(t, err)

	obj, found := root.Find("AcroForm")
	require.True(t, found, "el documento firmable debe declarar un AcroForm")
	acro, err := ctx.DereferenceDict(obj)
	require.NoError(t, err)

	fieldsObj, found := acro.Find("Fields")
	require.True(t, found)
	fields, err := ctx.DereferenceArray(fieldsObj)
	require.NoError(t, err)

	var out []types.Dict
	for _, f := range fields {
		d, err := ctx.DereferenceDict(f)
		require.NoError(t, err)
		if name := d.NameEntry("FT"); name != nil && *name == "Sig" {
			out = append(out, d)
		}
	}
	return out
}

func TestSignatureFieldInjector_AgregaUnCampoSig(t *testing.T) {
	doc := renderedReceipt(t, 3)
	injector := pdf.NewSignatureFieldInjector(pdf.ReceiptSignatureField)

	signed, err := injector.AddSignatureField(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(signed, []byte("%PDF")))

	ctx := readBack(t, signed)
	sigs := signatureFields(t, ctx)
	require.Len(t, sigs, 1, "exactamente un campo de firma")

	nameObj, found := sigs[0].Find("T")
	require.True(t, found)
	lit, ok := nameObj.(types.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, pdf.ReceiptSignatureField, lit.Value())
}

func TestSignatureFieldInjector_NoAlteraElPaginado(t *testing.T) {
	doc := renderedReceipt(t, 30) // varias páginas
	before := readBack(t, doc).PageCount

	signed, err := pdf.NewSignatureFieldInjector(pdf.ReceiptSignatureField).AddSignatureField(doc)
	require.NoError(t, err)

	ctx := readBack(t, signed)
	assert.Equal(t, before, ctx.PageCount)
}

func TestSignatureFieldInjector_NoMutaLaEntrada(t *testing.T) {
	doc := renderedReceipt(t, 2)
	original := append([]byte{}, doc...)

	_, err := pdf.NewSignatureFieldInjector(pdf.TransferSignatureField).AddSignatureField(doc)
	require.NoError(t, err)

	assert.Equal(t, original, doc, "la entrada es inmutable; la salida es un documento nuevo")
}

func TestSignatureFieldInjector_EntradaMalformada(t *testing.T) {
	injector := pdf.NewSignatureFieldInjector(pdf.ReceiptSignatureField)

	out, err := injector.AddSignatureField([]byte("esto no es un PDF"))

	var pErr *domain.PdfStructureError
	require.ErrorAs(t, err, &pErr)
	assert.Nil(t, out)
}
