package renderer2d

// Built-in GLSL sources matching quadVertexLayout. Null-terminated for
// gl.Strs.

const DefaultVertexShader = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
layout(location=3) in float aTex;

uniform mat4 uVP;

out vec4 vColor;
out vec2 vUV;
out float vTex;

void main() {
    vColor = aColor;
    vUV = aUV;
    vTex = aTex;
    gl_Position = uVP * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const DefaultFragmentShader = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
in float vTex;

uniform sampler2D uTex[16];

out vec4 FragColor;

void main() {
    int idx = int(vTex + 0.5);
    FragColor = texture(uTex[idx], vUV) * vColor;
}
` + "\x00"
