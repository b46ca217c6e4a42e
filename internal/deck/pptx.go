package deck

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hyperjump/deckgen/internal/models"
	"github.com/hyperjump/deckgen/pkg/utils"
)

// Slide geometry in EMU (914400 per inch), 16:9.
const (
	slideCX = 12192000
	slideCY = 6858000

	titleX, titleY, titleW, titleH     = 685800, 457200, 10820400, 1143000
	bodyX, bodyY, bodyW, bodyH         = 685800, 1828800, 10820400, 4114800
	footerX, footerY, footerW, footerH = 685800, 6309360, 10820400, 365760

	logoSize   = 914400
	logoMargin = 228600
)

const (
	whiteHex = "FFFFFF"
	blackHex = "000000"
	mutedHex = "888888"

	footerFontSize = 10

	renderedTitleLimit = 250
)

// titleFontSize returns the title point size for a body size: four points
// larger, never below 14.
func titleFontSize(bodySize int) int {
	if s := bodySize + 4; s > 14 {
		return s
	}
	return 14
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func esc(s string) string { return xmlEscaper.Replace(s) }

// BuildPPTX assembles a .pptx deck: one title slide, then one content slide
// per record, styled per the resolved style. logo, when non-nil, is a PNG
// placed bottom-right on every content slide. Invalid style values degrade
// per element to safe defaults; only packaging errors are returned.
func BuildPPTX(slideRecords []models.Slide, st models.Style, logo []byte) ([]byte, error) {
	bg := normalizeHex(st.BackgroundColor, whiteHex)
	fontColor := normalizeHex(st.FontColor, blackHex)
	fontSize := st.FontSize
	if fontSize <= 0 {
		fontSize = models.DefaultFontSize
	}
	font := st.Font
	if font == "" {
		font = models.DefaultFont
	}

	total := len(slideRecords) + 1 // plus the title slide

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML(total)},
		{"_rels/.rels", rootRelsXML()},
		{"docProps/core.xml", corePropsXML()},
		{"docProps/app.xml", appPropsXML(total)},
		{"ppt/presentation.xml", presentationXML(total)},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(total)},
		{"ppt/presProps.xml", presPropsXML()},
		{"ppt/viewProps.xml", viewPropsXML()},
		{"ppt/theme/theme1.xml", themeXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML()},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML()},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML()},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML()},
	}
	for _, p := range parts {
		if err := writeZipText(w, p.name, p.content); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	hasLogo := len(logo) > 0
	if hasLogo {
		if err := writeZipBytes(w, "ppt/media/logo.png", logo); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	// Slide 1 is the deck title slide; content slides follow in record order.
	titleSlide := titleSlideXML(bg, font, fontColor)
	if err := writeZipText(w, "ppt/slides/slide1.xml", titleSlide); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := writeZipText(w, "ppt/slides/_rels/slide1.xml.rels", slideRelsXML(false)); err != nil {
		_ = w.Close()
		return nil, err
	}
	for i, rec := range slideRecords {
		n := i + 2
		content := contentSlideXML(rec, st, bg, font, fontColor, fontSize, hasLogo)
		if err := writeZipText(w, fmt.Sprintf("ppt/slides/slide%d.xml", n), content); err != nil {
			_ = w.Close()
			return nil, err
		}
		if err := writeZipText(w, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML(hasLogo)); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeZipText(w *zip.Writer, name, content string) error {
	f, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("create zip entry %s: %w", name, err)
	}
	if _, err := io.Copy(f, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write zip entry %s: %w", name, err)
	}
	return nil
}

func writeZipBytes(w *zip.Writer, name string, payload []byte) error {
	f, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("create zip entry %s: %w", name, err)
	}
	if _, err := f.Write(payload); err != nil {
		return fmt.Errorf("write zip entry %s: %w", name, err)
	}
	return nil
}

// textBoxXML renders one textbox shape with the given paragraphs (already
// escaped runs of <a:p> markup).
func textBoxXML(id int, name string, x, y, cx, cy int, paragraphs string) string {
	return `<p:sp><p:nvSpPr>` +
		fmt.Sprintf(`<p:cNvPr id="%d" name="%s"/>`, id, name) +
		`<p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>` +
		`<p:spPr>` +
		fmt.Sprintf(`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, x, y, cx, cy) +
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>` +
		`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>` +
		paragraphs +
		`</p:txBody></p:sp>`
}

// paragraphXML renders one paragraph: optional bullet glyph, one run with the
// given font, size (points) and color.
func paragraphXML(text, font string, sizePt int, colorHex string, bullet bool) string {
	bu := `<a:buNone/>`
	if bullet {
		bu = `<a:buChar char="&#8226;"/>`
	}
	return `<a:p><a:pPr>` + bu + `</a:pPr><a:r>` +
		fmt.Sprintf(`<a:rPr lang="en-US" sz="%d" dirty="0">`, sizePt*100) +
		fmt.Sprintf(`<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, colorHex) +
		fmt.Sprintf(`<a:latin typeface="%s"/>`, esc(font)) +
		`</a:rPr>` +
		`<a:t>` + esc(text) + `</a:t></a:r></a:p>`
}

func backgroundXML(bgHex string) string {
	return `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="` + bgHex + `"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`
}

// titleSlideXML renders the fixed opening slide.
func titleSlideXML(bgHex, font, fontColorHex string) string {
	title := textBoxXML(2, "Title", titleX, slideCY/3, titleW, titleH,
		paragraphXML("Auto-generated Presentation", font, 32, fontColorHex, false))
	subtitle := textBoxXML(3, "Subtitle", titleX, slideCY/3+titleH, titleW, footerH,
		paragraphXML("Generated by deckgen", font, 16, mutedHex, false))
	return slideShellXML(backgroundXML(bgHex), title+subtitle)
}

// contentSlideXML renders one content slide: background fill, title, one
// paragraph per bullet, optional footer, optional logo.
func contentSlideXML(rec models.Slide, st models.Style, bgHex, font, fontColorHex string, fontSize int, hasLogo bool) string {
	title := textBoxXML(2, "Title", titleX, titleY, titleW, titleH,
		paragraphXML(utils.TruncateHard(rec.Title, renderedTitleLimit), font, titleFontSize(fontSize), fontColorHex, false))

	var body strings.Builder
	for _, b := range rec.Bullets {
		text := b
		if st.EmojiInBullets {
			text = "• " + text
		}
		body.WriteString(paragraphXML(text, font, fontSize, fontColorHex, true))
	}
	shapes := title + textBoxXML(3, "Body", bodyX, bodyY, bodyW, bodyH, body.String())

	if st.FooterText != "" {
		shapes += textBoxXML(4, "Footer", footerX, footerY, footerW, footerH,
			paragraphXML(st.FooterText, font, footerFontSize, mutedHex, false))
	}
	if hasLogo {
		shapes += logoXML()
	}
	return slideShellXML(backgroundXML(bgHex), shapes)
}

// logoXML places the logo image at a fixed bottom-right position.
func logoXML() string {
	return `<p:pic><p:nvPicPr><p:cNvPr id="5" name="Logo"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>` +
		`<p:blipFill><a:blip r:embed="rId2"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>` +
		fmt.Sprintf(`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`,
			slideCX-logoSize-logoMargin, slideCY-logoSize-logoMargin, logoSize, logoSize) +
		`</p:pic>`
}

func slideShellXML(background, shapes string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<p:cSld>` + background + `<p:spTree>` +
		`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		shapes +
		`</p:spTree></p:cSld>` +
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
		`</p:sld>`
}

func slideRelsXML(hasLogo bool) string {
	rels := `<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`
	if hasLogo {
		rels += `<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/logo.png"/>`
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + rels + `</Relationships>`
}

func contentTypesXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/viewProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func rootRelsXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
		`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
		`</Relationships>`
}

func corePropsXML() string {
	now := time.Now().UTC().Format(time.RFC3339)
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>Auto-generated Presentation</dc:title>` +
		`<dc:creator>deckgen</dc:creator>` +
		`<cp:lastModifiedBy>deckgen</cp:lastModifiedBy>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + now + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + now + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

func appPropsXML(slideCount int) string {
	var titles strings.Builder
	fmt.Fprintf(&titles, `<vt:vector size="%d" baseType="lpstr">`, slideCount)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&titles, `<vt:lpstr>Slide %d</vt:lpstr>`, i)
	}
	titles.WriteString(`</vt:vector>`)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">`)
	b.WriteString(`<Application>deckgen</Application>`)
	b.WriteString(`<PresentationFormat>On-screen Show (16:9)</PresentationFormat>`)
	fmt.Fprintf(&b, `<Slides>%d</Slides>`, slideCount)
	b.WriteString(`<Notes>0</Notes><HiddenSlides>0</HiddenSlides><MMClips>0</MMClips><ScaleCrop>false</ScaleCrop>`)
	b.WriteString(`<HeadingPairs><vt:vector size="2" baseType="variant"><vt:variant><vt:lpstr>Slides</vt:lpstr></vt:variant><vt:variant><vt:i4>`)
	fmt.Fprintf(&b, `%d`, slideCount)
	b.WriteString(`</vt:i4></vt:variant></vt:vector></HeadingPairs>`)
	b.WriteString(`<TitlesOfParts>` + titles.String() + `</TitlesOfParts>`)
	b.WriteString(`<AppVersion>16.0000</AppVersion>`)
	b.WriteString(`</Properties>`)
	return b.String()
}

func presentationXML(slideCount int) string {
	var sldIds strings.Builder
	sldIds.WriteString(`<p:sldIdLst>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&sldIds, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 5+i)
	}
	sldIds.WriteString(`</p:sldIdLst>`)

	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" saveSubsetFonts="1">` +
		`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>` +
		sldIds.String() +
		fmt.Sprintf(`<p:sldSz cx="%d" cy="%d" type="screen16x9"/>`, slideCX, slideCY) +
		`<p:notesSz cx="6858000" cy="9144000"/>` +
		`<p:defaultTextStyle/>` +
		`</p:presentation>`
}

func presentationRelsXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps" Target="presProps.xml"/>`)
	b.WriteString(`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps" Target="viewProps.xml"/>`)
	b.WriteString(`<Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, 5+i, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func presPropsXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:presentationPr xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`
}

func viewPropsXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:viewPr xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`
}

func slideMasterXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>` +
		`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld>` +
		`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
		`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
		`</p:sldMaster>`
}

func slideMasterRelsXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
		`</Relationships>`
}

func slideLayoutXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" type="blank">` +
		`<p:cSld name="Blank">` +
		`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld>` +
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
		`</p:sldLayout>`
}

func slideLayoutRelsXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
		`</Relationships>`
}

// themeXML is a minimal Office theme; slides override colors and fonts per run,
// so only the scheme skeleton matters here.
func themeXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="deckgen">` +
		`<a:themeElements>` +
		`<a:clrScheme name="deckgen">` +
		`<a:dk1><a:srgbClr val="000000"/></a:dk1><a:lt1><a:srgbClr val="FFFFFF"/></a:lt1>` +
		`<a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
		`<a:accent1><a:srgbClr val="4472C4"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
		`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
		`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
		`<a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
		`</a:clrScheme>` +
		`<a:fontScheme name="deckgen">` +
		`<a:majorFont><a:latin typeface="Arial"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
		`<a:minorFont><a:latin typeface="Arial"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
		`</a:fontScheme>` +
		`<a:fmtScheme name="deckgen">` +
		`<a:fillStyleLst>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`</a:fillStyleLst>` +
		`<a:lnStyleLst>` +
		`<a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
		`<a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
		`<a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
		`</a:lnStyleLst>` +
		`<a:effectStyleLst>` +
		`<a:effectStyle><a:effectLst/></a:effectStyle>` +
		`<a:effectStyle><a:effectLst/></a:effectStyle>` +
		`<a:effectStyle><a:effectLst/></a:effectStyle>` +
		`</a:effectStyleLst>` +
		`<a:bgFillStyleLst>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
		`</a:bgFillStyleLst>` +
		`</a:fmtScheme>` +
		`</a:themeElements>` +
		`</a:theme>`
}
