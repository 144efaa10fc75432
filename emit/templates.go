package emit

import "text/template"

const banner = `/*
 *  Automatically generated by {{.Generator}}, do not edit!
 */
`

var sourceTemplate = template.Must(template.New("source").Parse(banner + `
#include "{{.Ident}}_internal.h"

{{range .Variants}}{{.Cond}} defined({{.Define}})
/* native functions: {{len .Natives}} */
{{$.Ident}}_c_function {{$.Ident}}_builtin_native_functions[] = {
{{- range .Natives}}
	({{$.Ident}}_c_function) {{.}},
{{- end}}
};

char {{$.Ident}}_builtins_data[] = {
{{- range .Rows}}
	{{.}}
{{- end}}
};
{{end}}#else
#error invalid endianness defines
#endif
`))

var headerTemplate = template.Must(template.New("header").Parse(banner + `
#ifndef {{.Macro}}_BUILTINS_H_INCLUDED
#define {{.Macro}}_BUILTINS_H_INCLUDED

{{range .Variants}}{{.Cond}} defined({{.Define}})
extern {{$.Ident}}_c_function {{$.Ident}}_builtin_native_functions[];

extern char {{$.Ident}}_builtins_data[];

#define {{$.Macro}}_BUILTINS_DATA_LENGTH {{.Length}}

{{range .Objects}}#define {{.Name}} {{.Index}}
{{end}}
#define {{$.Macro}}_NUM_BUILTINS {{$.NumObjects}}

{{end}}#else
#error invalid endianness defines
#endif

#endif  /* {{.Macro}}_BUILTINS_H_INCLUDED */
`))
