package forms_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-forms/internal/application/forms"
	"github.com/jhoicas/asset-forms/internal/domain"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
	"github.com/jhoicas/asset-forms/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestController cubre la orquestación del pipeline de generación
// (snapshot → render → firma → nombre → escritura) con dobles de prueba, y la
// semántica todo-o-nada de la importación. El controlador nunca escribe nada
// si un paso anterior falla, y ningún error deja el almacén inconsistente.
// ──────────────────────────────────────────────────────────────────────────────

type fakeImporter struct {
	rows []entity.Row
	err  error
}

func (f *fakeImporter) Import(string) ([]entity.Row, error) { return f.rows, f.err }

type fakeRenderer struct {
	out []byte
	err error

	gotRows []entity.Row
}

func (f *fakeRenderer) Render(_ entity.FormHeader, rows []entity.Row) ([]byte, error) {
	f.gotRows = rows
	return f.out, f.err
}

type fakeSigner struct {
	err error
}

func (f *fakeSigner) AddSignatureField(pdf []byte) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append(append([]byte{}, pdf...), []byte("+sig")...), nil
}

type fakeDocStore struct {
	existing map[string]bool

	wroteName string
	wroteData []byte
}

func (f *fakeDocStore) ExistingNames() (map[string]bool, error) { return f.existing, nil }

func (f *fakeDocStore) Write(name string, data []byte) (string, error) {
	f.wroteName = name
	f.wroteData = data
	return "/out/" + name, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func receiptHeader() entity.ReceiptHeader {
	return entity.ReceiptHeader{
		CustodianName: "Jane Roe",
		EmpID:         "E123",
		Department:    "IT",
	}
}

func newTestController(variant entity.FormVariant, r *fakeRenderer, d *fakeDocStore) *forms.Controller {
	return forms.NewController(variant, &fakeImporter{}, r, &fakeSigner{}, d, testLogger())
}

func TestController_GeneratePipelineCompleto(t *testing.T) {
	renderer := &fakeRenderer{out: []byte("%PDF-fake")}
	docs := &fakeDocStore{existing: map[string]bool{}}
	ctrl := newTestController(entity.VariantReceipt, renderer, docs)

	require.NoError(t, ctrl.Store().ReplaceAll([]entity.Row{
		validReceiptRow("SC-1", "Laptop Dell XPS", 1),
	}))

	doc, err := ctrl.Generate(receiptHeader())
	require.NoError(t, err)

	assert.Equal(t, "E123 - Jane Roe - acknowledgement form Laptop Dell XPS.pdf", docs.wroteName)
	assert.Equal(t, []byte("%PDF-fake+sig"), docs.wroteData, "se escribe el PDF ya firmado")
	assert.Equal(t, "/out/"+docs.wroteName, doc.Path)
	require.Len(t, renderer.gotRows, 1)
	assert.Equal(t, "Laptop Dell XPS", renderer.gotRows[0].Description)
}

func TestController_GenerateDesambiguaNombre(t *testing.T) {
	renderer := &fakeRenderer{out: []byte("%PDF-fake")}
	docs := &fakeDocStore{existing: map[string]bool{
		"E123 - Jane Roe - acknowledgement form Laptop.pdf": true,
	}}
	ctrl := newTestController(entity.VariantReceipt, renderer, docs)

	require.NoError(t, ctrl.Store().ReplaceAll([]entity.Row{
		validReceiptRow("SC-1", "Laptop", 1),
	}))

	_, err := ctrl.Generate(receiptHeader())
	require.NoError(t, err)

	assert.Equal(t, "E123 - Jane Roe - acknowledgement form Laptop #2.pdf", docs.wroteName)
}

func TestController_GenerateNombreDeTransferencia(t *testing.T) {
	renderer := &fakeRenderer{out: []byte("%PDF-fake")}
	docs := &fakeDocStore{existing: map[string]bool{}}
	ctrl := newTestController(entity.VariantTransfer, renderer, docs)

	row := entity.NewRow(entity.VariantTransfer)
	row.StoreCode = "SC-9"
	row.AssetName = "Projector"
	row.Description = "Epson EB-X06"
	require.NoError(t, ctrl.Store().ReplaceAll([]entity.Row{row}))

	_, err := ctrl.Generate(entity.TransferHeader{
		FromName: "Jane Roe", FromEmpID: "E1", FromDepartment: "IT",
		ToName: "Li Wei", ToEmpID: "E2", ToDepartment: "HR",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asset Transfer - From E1-Jane Roe to E2-Li Wei.pdf", docs.wroteName)
}

func TestController_GenerateRechazaVarianteAjena(t *testing.T) {
	ctrl := newTestController(entity.VariantReceipt, &fakeRenderer{}, &fakeDocStore{})

	_, err := ctrl.Generate(entity.TransferHeader{})

	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
}

func TestController_GeneratePropagaErrorDeRender(t *testing.T) {
	renderErr := &domain.RenderError{Reason: "no line items to print", Err: domain.ErrEmptyRows}
	docs := &fakeDocStore{existing: map[string]bool{}}
	ctrl := newTestController(entity.VariantReceipt, &fakeRenderer{err: renderErr}, docs)

	_, err := ctrl.Generate(receiptHeader())

	var rErr *domain.RenderError
	require.ErrorAs(t, err, &rErr)
	assert.Empty(t, docs.wroteName, "nada se escribe si el render falla")
}

func TestController_GeneratePropagaErrorDeFirma(t *testing.T) {
	signErr := &domain.PdfStructureError{Err: errors.New("truncated xref")}
	docs := &fakeDocStore{existing: map[string]bool{}}
	ctrl := forms.NewController(entity.VariantReceipt, &fakeImporter{},
		&fakeRenderer{out: []byte("%PDF-fake")}, &fakeSigner{err: signErr}, docs, testLogger())

	require.NoError(t, ctrl.Store().ReplaceAll([]entity.Row{validReceiptRow("SC-1", "Laptop", 1)}))

	_, err := ctrl.Generate(receiptHeader())

	var pErr *domain.PdfStructureError
	require.ErrorAs(t, err, &pErr)
	assert.Empty(t, docs.wroteName)
}

func TestController_ImportReemplazaContenido(t *testing.T) {
	imported := []entity.Row{
		validReceiptRow("SC-1", "Laptop", 1),
		validReceiptRow("SC-2", "Mouse", 3),
	}
	ctrl := forms.NewController(entity.VariantReceipt, &fakeImporter{rows: imported},
		&fakeRenderer{}, &fakeSigner{}, &fakeDocStore{}, testLogger())
	ctrl.Store().AddRow() // contenido manual previo

	n, err := ctrl.ImportFromFile("inventario.xlsx")
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, ctrl.Store().Len())
}

func TestController_ImportFallidoNoTocaElAlmacen(t *testing.T) {
	ctrl := forms.NewController(entity.VariantReceipt,
		&fakeImporter{err: &domain.SchemaError{Missing: []string{"qty"}}},
		&fakeRenderer{}, &fakeSigner{}, &fakeDocStore{}, testLogger())

	require.NoError(t, ctrl.Store().ReplaceAll([]entity.Row{validReceiptRow("SC-1", "Laptop", 1)}))

	_, err := ctrl.ImportFromFile("roto.xlsx")

	var sErr *domain.SchemaError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 1, ctrl.Store().Len(), "el almacén conserva su último estado válido")
}
