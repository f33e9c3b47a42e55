// Package record modela las referencias entre registros LivingApps.
//
// Un campo applookup llega por el wire como un localizador completo:
//
//	https://my.living-apps.de/rest/apps/{appID}/records/{recordID}
//
// donde recordID son los últimos 24 caracteres hexadecimales. Este paquete
// extrae el identificador, construye localizadores de salida y tipa la
// referencia para que el resto del dominio no manipule strings ad-hoc.
package record

import (
	"fmt"
	"regexp"
)

// idPattern captura el segmento final de 24 caracteres hexadecimales.
var idPattern = regexp.MustCompile(`(?i)([a-f0-9]{24})$`)

// ExtractID devuelve el identificador de 24 hex al final del localizador, o
// "" si la entrada está vacía o no termina en un identificador válido.
// Función pura y total: nunca entra en pánico, mismo input → mismo output.
func ExtractID(ref string) string {
	if ref == "" {
		return ""
	}
	m := idPattern.FindStringSubmatch(ref)
	if m == nil {
		return ""
	}
	return m[1]
}

// Ref es un localizador crudo tal como viene del API (puede estar vacío,
// malformado o apuntar a un registro inexistente; nada de eso es un error:
// la resolución degrada a "desconocido").
type Ref string

// ID devuelve el identificador del registro referenciado, o "" si la
// referencia no es resoluble.
func (r Ref) ID() string { return ExtractID(string(r)) }

// IsZero reporta si la referencia está vacía.
func (r Ref) IsZero() bool { return r == "" }

// URL construye el localizador completo de un registro a partir del app ID
// y el identificador del registro elegido. Es la forma en que se serializan
// los campos applookup al crear registros.
func URL(baseURL, appID, recordID string) string {
	return fmt.Sprintf("%s/apps/%s/records/%s", baseURL, appID, recordID)
}
