package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/jhoicas/asset-forms/internal/domain"
)

// Nombres de campo de firma por variante. Los lectores de PDF los muestran al
// firmar con certificado, por eso son estables.
const (
	ReceiptSignatureField  = "EmployeeSignature"
	TransferSignatureField = "Signature"
)

// Rectángulo del campo de firma en puntos PDF (origen abajo-izquierda),
// alineado con la caja dibujada al pie de la última página: margen de 10mm
// y caja de 56mm x 24mm sobre el pie de página.
var signatureRect = []float64{
	28.35,          // x1: margen izquierdo
	48.0,           // y1: sobre el pie "Page N of M"
	28.35 + 158.74, // x2
	48.0 + 68.03,   // y2
}

// SignatureFieldInjector agrega un campo de firma digital interactivo
// (sin firmar, listo para certificado) a un PDF ya generado.
type SignatureFieldInjector struct {
	fieldName string
}

// NewSignatureFieldInjector crea el inyector para el nombre de campo dado.
func NewSignatureFieldInjector(fieldName string) *SignatureFieldInjector {
	return &SignatureFieldInjector{fieldName: fieldName}
}

// AddSignatureField inserta una anotación widget /Sig en la última página y
// registra el campo en el AcroForm del catálogo con SigFlags habilitados.
// La entrada no se modifica; se devuelve un documento nuevo. Un PDF
// malformado produce PdfStructureError.
func (s *SignatureFieldInjector) AddSignatureField(pdf []byte) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(pdf), conf)
	if err != nil {
		return nil, &domain.PdfStructureError{Err: err}
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, &domain.PdfStructureError{Err: err}
	}
	if ctx.PageCount < 1 {
		return nil, &domain.PdfStructureError{Err: errors.New("document has no pages")}
	}

	pageDict, pageRef, err := lastPage(ctx)
	if err != nil {
		return nil, &domain.PdfStructureError{Err: err}
	}

	sig := types.Dict(map[string]types.Object{
		"Type":    types.Name("Annot"),
		"Subtype": types.Name("Widget"),
		"FT":      types.Name("Sig"),
		"T":       types.StringLiteral(s.fieldName),
		"F":       types.Integer(4), // imprimible
		"Rect":    types.NewNumberArray(signatureRect[0], signatureRect[1], signatureRect[2], signatureRect[3]),
		"P":       *pageRef,
	})

	sigRef, err := ctx.IndRefForNewObject(sig)
	if err != nil {
		return nil, fmt.Errorf("registering signature field: %w", err)
	}

	// Anotación en la página.
	var annots types.Array
	if obj, found := pageDict.Find("Annots"); found {
		annots, err = ctx.DereferenceArray(obj)
		if err != nil {
			return nil, &domain.PdfStructureError{Err: err}
		}
	}
	pageDict["Annots"] = append(annots, *sigRef)

	// Campo en el AcroForm del catálogo. SigFlags 3 = SignaturesExist|AppendOnly.
	root, err := ctx.Catalog()
	if err != nil {
		return nil, &domain.PdfStructureError{Err: err}
	}
	if err := registerField(ctx, root, *sigRef); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, fmt.Errorf("writing signable document: %w", err)
	}
	return buf.Bytes(), nil
}

// registerField agrega la referencia del campo al AcroForm, creándolo si el
// documento aún no tiene uno.
func registerField(ctx *model.Context, root types.Dict, sigRef types.IndirectRef) error {
	obj, found := root.Find("AcroForm")
	if !found {
		root["AcroForm"] = types.Dict(map[string]types.Object{
			"Fields":   types.Array{sigRef},
			"SigFlags": types.Integer(3),
		})
		return nil
	}

	acro, err := ctx.DereferenceDict(obj)
	if err != nil || acro == nil {
		return &domain.PdfStructureError{Err: errors.New("AcroForm is not a dictionary")}
	}
	var fields types.Array
	if fObj, ok := acro.Find("Fields"); ok {
		fields, err = ctx.DereferenceArray(fObj)
		if err != nil {
			return &domain.PdfStructureError{Err: err}
		}
	}
	acro["Fields"] = append(fields, sigRef)
	acro["SigFlags"] = types.Integer(3)
	return nil
}

// lastPage recorre el árbol /Pages hasta la hoja final, devolviendo el
// diccionario de la última página y su referencia indirecta.
func lastPage(ctx *model.Context) (types.Dict, *types.IndirectRef, error) {
	root, err := ctx.Catalog()
	if err != nil {
		return nil, nil, err
	}

	obj, found := root.Find("Pages")
	if !found {
		return nil, nil, errors.New("catalog has no page tree")
	}
	ref, ok := obj.(types.IndirectRef)
	if !ok {
		return nil, nil, errors.New("page tree root is not an indirect reference")
	}

	for {
		d, err := ctx.DereferenceDict(ref)
		if err != nil || d == nil {
			return nil, nil, errors.New("page tree node is not a dictionary")
		}

		typ := d.Type()
		if typ != nil && *typ == "Page" {
			return d, &ref, nil
		}

		kids, err := ctx.DereferenceArray(d["Kids"])
		if err != nil || len(kids) == 0 {
			return nil, nil, errors.New("page tree node has no kids")
		}
		ref, ok = kids[len(kids)-1].(types.IndirectRef)
		if !ok {
			return nil, nil, errors.New("page tree kid is not an indirect reference")
		}
	}
}
