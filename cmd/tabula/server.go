//----------------------------------------------------------------------
// This file is part of gallifreyan.
// Copyright (C) 2024-present the gallifreyan authors.
//
// gallifreyan is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// gallifreyan is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package main

import (
	"bytes"
	"embed"
	"flag"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/circlescript/gallifreyan/lib"
)

//go:embed gui.htpl
var fsys embed.FS

// shared with the request handler; only one preview server runs per
// process, so no locking is needed.
var tpl *template.Template

// Message is a status line shown above the preview.
type Message struct {
	Mode string
	Text string
}

// PreviewData holds everything the "preview" template needs.
type PreviewData struct {
	Scene string
	Msgs  []*Message
	SVG   template.HTML
	Chart template.HTML
}

// AddMsg appends a status line.
func (pd *PreviewData) AddMsg(mode, text string) {
	pd.Msgs = append(pd.Msgs, &Message{mode, text})
}

// serve runs the scene preview HTTP server: given a "?scene=" query
// parameter it renders both the scene's SVG document and its letter
// notch-width chart inline.
func serve(args []string) {
	var listen string
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.StringVar(&listen, "l", "localhost:12345", "listen address")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	tpl = template.New("gui")
	tpl.Funcs(template.FuncMap{
		"msgClass": func(mode string) string {
			switch mode {
			case "ERROR":
				return "stat-err"
			case "WARN":
				return "stat-warn"
			default:
				return "stat-info"
			}
		},
	})
	if _, err := tpl.ParseFS(fsys, "gui.htpl"); err != nil {
		log.Fatal("tpl: " + err.Error())
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", previewHandler)

	srv := &http.Server{
		Addr:              listen,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       300 * time.Second,
		ReadHeaderTimeout: 20 * time.Second,
		Handler:           mux,
	}
	go func() {
		log.Printf("starting HTTP server at %s...", listen)
		if err := srv.ListenAndServe(); err != nil {
			log.Println("preview listener: " + err.Error())
		}
	}()

	sigCh := make(chan os.Signal, 5)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("terminating service")
}

// previewHandler renders the scene named by "?scene=" (if any).
func previewHandler(w http.ResponseWriter, r *http.Request) {
	pd := &PreviewData{Scene: r.URL.Query().Get("scene")}
	if len(pd.Scene) > 0 {
		if err := renderPreview(pd); err != nil {
			pd.AddMsg("ERROR", err.Error())
		}
	}
	renderPage(w, pd, "preview")
}

// renderPreview loads and renders the scene's SVG document and notch
// chart, both inlined as raw SVG markup.
func renderPreview(pd *PreviewData) error {
	scene, err := lib.LoadScene(pd.Scene)
	if err != nil {
		return err
	}
	doc, origin := lib.NewSVGDocument(1024, 1024, "white")
	words, _, err := scene.Build(origin)
	if err != nil {
		return err
	}
	for _, word := range words {
		if err := word.Draw(doc); err != nil {
			return err
		}
	}
	tmp, err := os.CreateTemp("", "tabula-*.svg")
	if err != nil {
		return err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())
	if err := doc.Save(tmp.Name()); err != nil {
		return err
	}
	svgData, err := os.ReadFile(tmp.Name())
	if err != nil {
		return err
	}
	pd.SVG = template.HTML(svgData) // nolint: gosec -- locally authored scene files only

	chartWrt, err := notchPlot(words, "svg")
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := chartWrt.WriteTo(&buf); err != nil {
		return err
	}
	pd.Chart = template.HTML(buf.String()) // nolint: gosec -- locally authored scene files only
	return nil
}

// renderPage executes the named template body inside "main".
func renderPage(w io.Writer, data any, body string) {
	t := tpl.Lookup(body)
	if t == nil {
		io.WriteString(w, "no template '"+body+"' found")
		return
	}
	content := new(bytes.Buffer)
	if err := t.Execute(content, data); err != nil {
		io.WriteString(w, err.Error())
		return
	}
	t = tpl.Lookup("main")
	if t == nil {
		io.WriteString(w, "no main template found")
		return
	}
	if err := t.Execute(w, template.HTML(content.String())); err != nil { // nolint: gosec -- content comes from our own templates, not user input
		io.WriteString(w, err.Error())
	}
}
